package post

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hackkaliboi/DXN/internal/middleware"
	"github.com/hackkaliboi/DXN/internal/modules/processing/markdown"
	"github.com/hackkaliboi/DXN/internal/pkg/objectid"
	"github.com/hackkaliboi/DXN/internal/pkg/pagination"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc     *Service
	siteURL string
}

func NewHandler(svc *Service, siteURL string) *Handler {
	return &Handler{svc: svc, siteURL: siteURL}
}

// RegisterRoutes mounts post routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/trending", h.trending)
	posts.GET("/featured", h.featured)
	posts.GET("/:id", h.get)

	admin := rg.Group("/admin/posts", adminMW...)
	admin.GET("", h.adminList)
	admin.GET("/:id", h.adminGet)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.PATCH("/:id/publish", h.publish)
	admin.DELETE("/:id", h.delete)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, err := h.svc.ListPublished(c.Request.Context(), lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// trending GET /posts/trending
func (h *Handler) trending(c *gin.Context) {
	posts, err := h.svc.Trending(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// featured GET /posts/featured
func (h *Handler) featured(c *gin.Context) {
	posts, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, posts)
}

// get GET /posts/:id
func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	if err := objectid.Validate(id); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	vm, err := h.svc.GetPublished(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if vm == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, gin.H{
		"data": vm,
		"html": markdown.Render(vm.Text),
		"seo":  toSEO(*vm, h.siteURL),
	})
}

// adminList GET /admin/posts  [admin]
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)
	posts, pag, err := h.svc.AdminList(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, posts, pag)
}

// adminGet GET /admin/posts/:id  [admin]
func (h *Handler) adminGet(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

// create POST /admin/posts  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, post)
}

// update PUT /admin/posts/:id  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

type publishDTO struct {
	Published *bool `json:"published" binding:"required"`
}

// publish PATCH /admin/posts/:id/publish  [admin]
func (h *Handler) publish(c *gin.Context) {
	var dto publishDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.SetPublished(c.Param("id"), *dto.Published)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, gin.H{"success": true})
}

// delete DELETE /admin/posts/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
