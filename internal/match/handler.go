package match

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

// Handler exposes the recommendation endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes registers recommendation routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/recommendations", h.recommendations)
}

type reasonDTO struct {
	Code  ReasonCode `json:"code"`
	Label string     `json:"label"`
}

type recommendationDTO struct {
	Job          Posting     `json:"job"`
	MatchReasons []reasonDTO `json:"matchReasons"`
}

func (h *Handler) recommendations(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	matches, err := h.Service.Recommendations(c.Request.Context(), userID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute recommendations", nil)
		return
	}

	out := make([]recommendationDTO, 0, len(matches))
	for _, m := range matches {
		reasons := make([]reasonDTO, 0, len(m.MatchReasons))
		for _, code := range m.MatchReasons {
			reasons = append(reasons, reasonDTO{Code: code, Label: ReasonLabel(code)})
		}
		out = append(out, recommendationDTO{Job: m.Job, MatchReasons: reasons})
	}

	respond.OK(c, gin.H{"recommendations": out})
}
