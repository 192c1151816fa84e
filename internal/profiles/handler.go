package profiles

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
	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.putProfile)
	rg.GET("/profile/preferences", h.getPreferences)
	rg.PUT("/profile/preferences", h.putPreferences)
}

func (h *Handler) getProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	profile, err := h.Svc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) putProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	var profile UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}
	profile.UserID = userID

	saved, err := h.Svc.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		return
	}
	respond.OK(c, saved)
}

func (h *Handler) getPreferences(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	prefs, err := h.Svc.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "preferences not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load preferences", nil)
		return
	}
	respond.OK(c, prefs)
}

func (h *Handler) putPreferences(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}
	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "invalid JSON body", nil)
		return
	}
	prefs.UserID = userID

	saved, err := h.Svc.SavePreferences(c.Request.Context(), prefs)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save preferences", nil)
		return
	}
	respond.OK(c, saved)
}
