package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/services/health"
	"todo-backend/internal/shared/config"
	"todo-backend/internal/shared/metrics"
	"todo-backend/internal/shared/server/middleware"
	"todo-backend/internal/shared/server/respond"
	"todo-backend/internal/tasks"
)

const aiRateLimitGroup = "ai"

// RouterDeps carries the constructed handlers the router wires up.
type RouterDeps struct {
	Config      config.Config
	TaskHandler *tasks.Handler
	Health      *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(aiRateLimit(deps.Config)),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	if deps.TaskHandler != nil {
		deps.TaskHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// aiRateLimit limits the endpoints that can reach the remote classifier.
// Other routes pass through unlimited.
func aiRateLimit(cfg config.Config) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			aiRateLimitGroup: {Rate: cfg.RateLimitAIRate, Burst: cfg.RateLimitAIBurst},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			if strings.HasSuffix(path, "/priority/analyze") || strings.HasSuffix(path, "/reanalyze-priority") {
				return aiRateLimitGroup
			}
			return ""
		},
	}
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
