package comment

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hackkaliboi/DXN/internal/middleware"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
	"github.com/hackkaliboi/DXN/internal/viewer"
)

// Handler exposes per-post comment threads over HTTP.
type Handler struct {
	loader *Loader
}

func NewHandler(loader *Loader) *Handler {
	return &Handler{loader: loader}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("/:id/comments", h.list)
	posts.POST("/:id/comments", h.create)
}

type createDTO struct {
	Text string `json:"text" binding:"required"`
}

type entryDTO struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	Created    time.Time `json:"created"`
}

func toEntryDTOs(entries []Entry) []entryDTO {
	out := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		dto := entryDTO{
			ID:         e.Comment.ID,
			Text:       e.Comment.Text,
			UserID:     e.Comment.UserID,
			AuthorName: e.AuthorName(),
			Created:    e.Comment.CreatedAt,
		}
		if e.Profile != nil {
			dto.AvatarURL = e.Profile.AvatarURL
		}
		out = append(out, dto)
	}
	return out
}

// list GET /posts/:id/comments
func (h *Handler) list(c *gin.Context) {
	thread, err := h.loader.Thread(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := thread.Load(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"data":  toEntryDTOs(thread.Entries()),
		"state": thread.State().String(),
	})
}

// create POST /posts/:id/comments
func (h *Handler) create(c *gin.Context) {
	thread, err := h.loader.Thread(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var dto createDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	who := viewer.Identity{ID: middleware.CurrentUserID(c)}
	if err := thread.Submit(c.Request.Context(), who, dto.Text); err != nil {
		switch {
		case errors.Is(err, ErrEmptyBody):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, viewer.ErrAuthRequired):
			response.Unauthorized(c, "please sign in to comment")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{
		"data":  toEntryDTOs(thread.Entries()),
		"state": thread.State().String(),
	})
}
