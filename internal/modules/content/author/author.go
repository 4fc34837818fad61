// Package author serves public author pages: the profile plus its
// published posts and counts.
package author

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AuthorPage is a profile with its published work.
type AuthorPage struct {
	Profile   *models.ProfileModel  `json:"profile"`
	Posts     []assembler.ViewModel `json:"posts"`
	PostCount int64                 `json:"post_count"`
}

// GetByProfileID assembles one author page. Returns (nil, nil) when the
// profile does not exist.
func (s *Service) GetByProfileID(id string) (*AuthorPage, error) {
	var profile models.ProfileModel
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var posts []models.PostModel
	err := s.db.
		Preload("Category").Preload("Author").
		Where("author_id = ? AND published = ?", profile.ID, true).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &AuthorPage{
		Profile:   &profile,
		Posts:     assembler.AssembleAll(posts),
		PostCount: int64(len(posts)),
	}, nil
}

// List returns every profile with its published post count, for the
// contributors strip.
func (s *Service) List() ([]AuthorPage, error) {
	var profiles []models.ProfileModel
	if err := s.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	out := make([]AuthorPage, len(profiles))
	for i := range profiles {
		var count int64
		err := s.db.Model(&models.PostModel{}).
			Where("author_id = ? AND published = ?", profiles[i].ID, true).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		out[i] = AuthorPage{Profile: &profiles[i], PostCount: count}
	}
	return out, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	authors.GET("", h.list)
	authors.GET("/:id", h.get)
}

// list GET /authors
func (h *Handler) list(c *gin.Context) {
	authors, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, authors)
}

// get GET /authors/:id
func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if err := objectid.Validate(id); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, err := h.svc.GetByProfileID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if page == nil {
		response.NotFoundMsg(c, "author not found")
		return
	}
	response.OK(c, page)
}
