package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.apply)
	rg.GET("/applications", h.list)
	rg.PATCH("/applications/:id", h.updateStatus)
}

type applyRequest struct {
	JobID string `json:"jobId"`
	Notes string `json:"notes,omitempty"`
}

func (h *Handler) apply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}

	app, err := h.Svc.Apply(c.Request.Context(), userID, middleware.UserEmailFromContext(c), req.JobID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job posting not found", nil)
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusConflict, "already_applied", "application already exists for this posting", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record application", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, app)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	apps, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	respond.OK(c, gin.H{"applications": apps})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}

	app, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application", nil)
		}
		return
	}
	respond.OK(c, app)
}
