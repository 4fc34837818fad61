package post

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/modules/content/archive"
	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
	"github.com/hackkaliboi/DXN/internal/pkg/pagination"
	slugpkg "github.com/hackkaliboi/DXN/internal/pkg/slug"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

const trendingSize = 3

var ErrCategoryNotFound = errors.New("category not found")

// Service handles post business logic. Public reads go through the
// gateway; the editing surface talks to the database directly.
type Service struct {
	db *gorm.DB
	gw gateway.Gateway
}

func NewService(db *gorm.DB, gw gateway.Gateway) *Service {
	return &Service{db: db, gw: gw}
}

// ListPublished returns reader-visible posts, optionally narrowed by a
// search query and category name.
func (s *Service) ListPublished(ctx context.Context, lq ListQuery) ([]assembler.ViewModel, error) {
	posts, err := s.gw.PublishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	all := assembler.AssembleAll(posts)
	return archive.Filter(all, archive.Criteria{Query: lq.Query, Category: lq.Category}), nil
}

// Trending returns the top posts by view count.
func (s *Service) Trending(ctx context.Context) ([]assembler.ViewModel, error) {
	var posts []models.PostModel
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("published = ?", true).
		Order("views DESC").
		Limit(trendingSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return assembler.AssembleAll(posts), nil
}

// Featured returns published posts flagged for the front page.
func (s *Service) Featured(ctx context.Context) ([]assembler.ViewModel, error) {
	var posts []models.PostModel
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Author").
		Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return assembler.AssembleAll(posts), nil
}

// GetPublished fetches one reader-visible post by id and bumps its view
// counter. The read-then-write pair is deliberate: a lost increment
// under concurrency is acceptable, a blocked page load is not.
func (s *Service) GetPublished(ctx context.Context, id string) (*assembler.ViewModel, error) {
	post, err := s.gw.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, nil
	}

	if err := s.gw.IncrementViews(ctx, post.ID, post.Views+1); err == nil {
		post.Views++
	}

	vm := assembler.Assemble(*post, post.Category, post.Author)
	return &vm, nil
}

// AdminList returns a paginated list of all posts, drafts included.
func (s *Service) AdminList(q pagination.Query) ([]models.PostModel, response.Pagination, error) {
	tx := s.db.Model(&models.PostModel{}).
		Preload("Category").Preload("Author").
		Order("created_at DESC")

	var posts []models.PostModel
	pag, err := pagination.Paginate(tx, q, &posts)
	return posts, pag, err
}

// GetByID fetches a single post by ID regardless of publish state.
func (s *Service) GetByID(id string) (*models.PostModel, error) {
	var post models.PostModel
	if err := s.db.Preload("Category").Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post. An empty slug is derived from the title;
// colliding slugs get a numeric suffix.
func (s *Service) Create(authorID string, dto *CreatePostDTO) (*models.PostModel, error) {
	slug := strings.TrimSpace(dto.Slug)
	if slug == "" {
		slug = slugpkg.From(dto.Title)
	}
	slug, err := s.uniqueSlug(slug, "")
	if err != nil {
		return nil, err
	}

	if dto.CategoryID != nil {
		if err := s.checkCategory(*dto.CategoryID); err != nil {
			return nil, err
		}
	}

	post := models.PostModel{
		Title:      dto.Title,
		Slug:       slug,
		Excerpt:    dto.Excerpt,
		Text:       dto.Text,
		CoverImage: dto.CoverImage,
		CategoryID: dto.CategoryID,
		Tags:       dto.Tags,
	}
	if authorID != "" {
		post.AuthorID = &authorID
	}
	if dto.Published != nil {
		post.Published = *dto.Published
	}
	if dto.Featured != nil {
		post.Featured = *dto.Featured
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update patches a post by ID.
func (s *Service) Update(id string, dto *UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil && *dto.Slug != post.Slug {
		slug, err := s.uniqueSlug(slugpkg.From(*dto.Slug), post.ID)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.CoverImage != nil {
		updates["cover_image"] = *dto.CoverImage
	}
	if dto.CategoryID != nil {
		if err := s.checkCategory(*dto.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *dto.CategoryID
	}
	if dto.Tags != nil {
		updates["tags"] = models.StringSlice(dto.Tags)
	}
	if dto.Published != nil {
		updates["published"] = *dto.Published
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}

	if err := s.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// SetPublished flips the publish flag.
func (s *Service) SetPublished(id string, published bool) (*models.PostModel, error) {
	return s.Update(id, &UpdatePostDTO{Published: &published})
}

// Delete soft-deletes a post by ID.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PostModel{}, "id = ?", id).Error
}

// uniqueSlug appends -2, -3, ... until the slug is free. excludeID
// ignores the post being updated.
func (s *Service) uniqueSlug(base, excludeID string) (string, error) {
	if base == "" {
		base = "untitled"
	}
	slug := base
	for i := 2; ; i++ {
		var count int64
		tx := s.db.Model(&models.PostModel{}).Where("slug = ?", slug)
		if excludeID != "" {
			tx = tx.Where("id <> ?", excludeID)
		}
		if err := tx.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *Service) checkCategory(id string) error {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
