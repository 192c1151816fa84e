package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter constructs the Gin engine with middleware and all feature routes.
func NewRouter(cfg config.Config, registrars ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	limiter := middleware.NewRateLimiter(nil)
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth("/api/v1/auth/google/", "/api/v1/health", "/metrics"),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:  limiter,
			GroupFor: rateGroupFor,
			Rules: map[string]middleware.RateRule{
				"default": {Rate: 10, Burst: 30},
				"llm":     {Rate: 0.5, Burst: 3},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, reg := range registrars {
		if reg != nil {
			reg.RegisterRoutes(api)
		}
	}
	return r
}

// rateGroupFor puts LLM-backed endpoints in a tighter bucket.
func rateGroupFor(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/enhance", "/api/v1/evaluate":
		return "llm"
	}
	return "default"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
