package plugin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"anilookup/internal/anilist"
	"anilookup/internal/search"
)

type Handler struct {
	Registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{Registry: registry}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)          // GET /plugins
	rg.GET("/:prefix", h.query) // GET /plugins/:prefix?q=...
}

func (h *Handler) list(c *gin.Context) {
	plugins := h.Registry.Plugins()
	items := make([]gin.H, 0, len(plugins))
	for _, p := range plugins {
		items = append(items, gin.H{"name": p.Name(), "prefix": p.Prefix()})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) query(c *gin.Context) {
	prefix := c.Param("prefix")
	args := strings.Fields(c.Query("q"))

	card, err := h.Registry.Dispatch(c.Request.Context(), prefix, args)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, card)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, search.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, anilist.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
