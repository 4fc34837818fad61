// Package dashboard aggregates the counters shown on the admin landing
// page.
package dashboard

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hackkaliboi/DXN/internal/models"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

// Summary is the admin dashboard counter set.
type Summary struct {
	Published  int64 `json:"published"`
	Drafts     int64 `json:"drafts"`
	Categories int64 `json:"categories"`
	Comments   int64 `json:"comments"`
	Users      int64 `json:"users"`
	Likes      int64 `json:"likes"`
	Shares     int64 `json:"shares"`
	TotalViews int64 `json:"total_views"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Summary() (*Summary, error) {
	var sum Summary

	counts := []struct {
		dest  *int64
		model interface{}
		where []interface{}
	}{
		{&sum.Published, &models.PostModel{}, []interface{}{"published = ?", true}},
		{&sum.Drafts, &models.PostModel{}, []interface{}{"published = ?", false}},
		{&sum.Categories, &models.CategoryModel{}, nil},
		{&sum.Comments, &models.CommentModel{}, nil},
		{&sum.Users, &models.UserModel{}, nil},
		{&sum.Likes, &models.LikeModel{}, nil},
		{&sum.Shares, &models.ShareModel{}, nil},
	}
	for _, c := range counts {
		tx := s.db.Model(c.model)
		if c.where != nil {
			tx = tx.Where(c.where[0], c.where[1:]...)
		}
		if err := tx.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := s.db.Model(&models.PostModel{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&sum.TotalViews).Error
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	rg.GET("/admin/dashboard", append(adminMW, h.summary)...)
}

// summary GET /admin/dashboard  [admin]
func (h *Handler) summary(c *gin.Context) {
	sum, err := h.svc.Summary()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, sum)
}
