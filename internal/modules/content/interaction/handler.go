package interaction

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackkaliboi/DXN/internal/middleware"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

// Handler exposes per-post engagement state over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("/:id/interactions", h.counts)
	posts.POST("/:id/like", h.toggleLike)
	posts.POST("/:id/share", h.share)
}

type shareDTO struct {
	Platform string `json:"platform" binding:"required"`
}

// counts GET /posts/:id/interactions
func (h *Handler) counts(c *gin.Context) {
	rec, err := h.svc.ForPost(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	who := currentViewer(c)
	if err := rec.Load(c.Request.Context(), who); err != nil {
		// Soft failure: zeroed counts are still rendered, the error is
		// carried alongside for a transient notification.
		c.JSON(http.StatusOK, gin.H{"data": rec.Counts(), "error": err.Error()})
		return
	}
	response.OK(c, gin.H{"data": rec.Counts()})
}

// toggleLike POST /posts/:id/like
func (h *Handler) toggleLike(c *gin.Context) {
	rec, err := h.svc.ForPost(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	who := currentViewer(c)
	if err := rec.Load(c.Request.Context(), who); err != nil {
		response.InternalError(c, err)
		return
	}

	result, err := rec.ToggleLike(c.Request.Context(), who)
	if err != nil {
		if errors.Is(err, viewer.ErrAuthRequired) {
			response.Unauthorized(c, "please sign in to like posts")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}

// share POST /posts/:id/share
func (h *Handler) share(c *gin.Context) {
	rec, err := h.svc.ForPost(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var dto shareDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	who := currentViewer(c)
	if err := rec.Load(c.Request.Context(), who); err != nil {
		response.InternalError(c, err)
		return
	}

	result, err := rec.RecordShare(c.Request.Context(), who, dto.Platform)
	if err != nil {
		if errors.Is(err, viewer.ErrAuthRequired) {
			response.Unauthorized(c, "please sign in to share posts")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}

func currentViewer(c *gin.Context) viewer.Identity {
	return viewer.Identity{ID: middleware.CurrentUserID(c)}
}
