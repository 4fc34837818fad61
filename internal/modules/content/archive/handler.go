package archive

import (
	"github.com/gin-gonic/gin"
	"github.com/hackkaliboi/DXN/internal/gateway"
	"github.com/hackkaliboi/DXN/internal/modules/content/assembler"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

// Handler serves the grouped archive view over the published set.
type Handler struct {
	gw gateway.Gateway
}

func NewHandler(gw gateway.Gateway) *Handler {
	return &Handler{gw: gw}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/archive", h.archive)
}

// archive GET /archive?query=&category=
func (h *Handler) archive(c *gin.Context) {
	posts, err := h.gw.PublishedPosts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	all := assembler.AssembleAll(posts)
	vms := Filter(all, Criteria{
		Query:    c.Query("query"),
		Category: c.Query("category"),
	})

	response.OK(c, gin.H{
		"data":       GroupByMonth(vms),
		"categories": Categories(all),
		"total":      len(vms),
	})
}
