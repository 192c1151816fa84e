package enhance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/respond"
)

// Handler exposes the enhancement endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes registers enhancement routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/enhance", h.enhance)
}

func (h *Handler) enhance(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}

	result, err := h.Service.Enhance(c.Request.Context(), c.GetString("requestId"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		case errors.Is(err, ErrProviderUnavailable):
			respond.Error(c, http.StatusBadGateway, "provider_unavailable", "enhancement provider unavailable", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "enhancement failed", nil)
		}
		return
	}

	respond.OK(c, result)
}
