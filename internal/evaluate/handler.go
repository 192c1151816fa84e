package evaluate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluate", h.evaluate)
}

type evaluateRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}

	grades, err := h.Svc.Evaluate(c.Request.Context(), req.ResumeText)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "evaluation failed", nil)
		return
	}
	respond.OK(c, grades)
}
