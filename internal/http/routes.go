package http

import (
	"studydesk/internal/config"
	"studydesk/internal/http/handlers"
	"studydesk/internal/http/middleware"
	"studydesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the HTML flow, the JSON API, the countdown socket and
// the ops endpoints onto r. db may be nil.
func RegisterRoutes(r *gin.Engine, study *service.StudyService, db *pgxpool.Pool, cfg *config.Config) {
	h := handlers.NewHandler(study, cfg.AllowedOrigin, cfg.CookieSecure)
	healthHandler := handlers.NewHealthHandler(db, study, cfg.AppVersion)

	r.Use(middleware.Metrics())
	r.SetHTMLTemplate(handlers.PageTemplate())

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	session := middleware.Session(study)
	limit := middleware.RateLimit(cfg.APIRateLimit, cfg.APIRateWindow)

	// HTML flow
	r.GET("/", session, h.Index)
	r.POST("/dispatch", limit, session, h.Dispatch)

	// Live countdown
	r.GET("/ws/timer", session, h.TimerWS)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(limit)
	registerAPIRoutes(v1, h, session)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, session gin.HandlerFunc) {
	api.POST("/session", h.CreateSession)

	authed := api.Group("")
	authed.Use(session, middleware.RequireSession())
	{
		authed.POST("/dispatch", h.DispatchJSON)
		authed.GET("/page/:id", h.GetPage)
	}

	api.GET("/tasks", h.ListTasks)
	api.GET("/graph", h.Graph)
}
