// Package category manages the category taxonomy. A category cannot be
// deleted while any post still references it.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/models"
	slugpkg "github.com/hackkaliboi/DXN/internal/pkg/slug"
)

// ErrCategoryInUse rejects deletion of a category that posts still
// reference.
var ErrCategoryInUse = errors.New("category is still used by posts")

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

type UpdateCategoryDTO struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

type Service struct {
	db *gorm.DB
	gw gateway.Gateway
}

func NewService(db *gorm.DB, gw gateway.Gateway) *Service {
	return &Service{db: db, gw: gw}
}

// List returns the reader-visible taxonomy through the gateway.
func (s *Service) List(ctx context.Context) ([]models.CategoryModel, error) {
	return s.gw.Categories(ctx)
}

// ListWithCounts returns each category with the number of posts in it.
func (s *Service) ListWithCounts() ([]CategoryWithCount, error) {
	var cats []models.CategoryModel
	if err := s.db.Order("created_at ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	out := make([]CategoryWithCount, len(cats))
	for i, cat := range cats {
		var count int64
		if err := s.db.Model(&models.PostModel{}).Where("category_id = ?", cat.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		out[i] = CategoryWithCount{CategoryModel: cat, PostCount: count}
	}
	return out, nil
}

// CategoryWithCount pairs a category with its post count.
type CategoryWithCount struct {
	models.CategoryModel
	PostCount int64 `json:"post_count"`
}

func (s *Service) GetByID(id string) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// GetByQuery resolves a category by id first, then by slug or name.
func (s *Service) GetByQuery(query string) (*models.CategoryModel, error) {
	if cat, err := s.GetByID(query); err != nil {
		return nil, err
	} else if cat != nil {
		return cat, nil
	}

	var cat models.CategoryModel
	if err := s.db.Where("slug = ? OR name = ?", query, query).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// Create inserts a new category. An empty slug is derived from the name.
func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	slug := strings.TrimSpace(dto.Slug)
	if slug == "" {
		slug = slugpkg.From(dto.Name)
	}

	var count int64
	s.db.Model(&models.CategoryModel{}).Where("slug = ? OR name = ?", slug, dto.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("name or slug already exists")
	}

	cat := models.CategoryModel{Name: dto.Name, Slug: slug}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}
	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		updates["slug"] = slugpkg.From(*dto.Slug)
	}
	return cat, s.db.Model(cat).Updates(updates).Error
}

// Delete removes a category. Deletion is refused while any post still
// points at it; posts are never silently detached.
func (s *Service) Delete(id string) error {
	var count int64
	if err := s.db.Model(&models.PostModel{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.db.Delete(&models.CategoryModel{}, "id = ?", id).Error
}
