package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tattoo-studio/internal/infrastructure/database"
	"tattoo-studio/internal/shared/middleware"
	"tattoo-studio/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	// các route đều có trailing slash, không tự redirect sang bản không slash
	router.RedirectTrailingSlash = false

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c.Config.App.Version, map[string]pinger{
		"database": c.DB,
		"redis":    c.Redis,
	}, c.DB))

	setupAuthRoutes(router, c)

	authed := router.Group("/", middleware.AuthMiddleware(c.JWTManager))
	{
		authed.GET("/", c.DashboardHandler.Get)
		authed.GET("/artists/", c.ArtistHandler.List)
		authed.GET("/designs/", c.DesignHandler.List)

		setupAppointmentRoutes(authed, c)
		setupTattooRequestRoutes(authed, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// APPOINTMENT ROUTES
// ========================================
func setupAppointmentRoutes(r *gin.RouterGroup, c *container.Container) {
	h := c.AppointmentHandler
	appointments := r.Group("/appointments")
	{
		appointments.GET("/", h.List)
		appointments.GET("/book/", h.BookForm)
		appointments.POST("/book/", h.Book)
		appointments.GET("/:id/cancel/", h.CancelConfirm)
		appointments.POST("/:id/cancel/", h.Cancel)
		appointments.GET("/:id/reschedule/", h.Reschedule)
	}
}

// ========================================
// TATTOO REQUEST ROUTES
// ========================================
func setupTattooRequestRoutes(r *gin.RouterGroup, c *container.Container) {
	h := c.TattooRequestHandler
	requests := r.Group("/requests")
	{
		requests.GET("/new/", h.NewForm)
		requests.POST("/new/", h.Create)
		requests.GET("/:id/", h.Detail)
	}
}

// ========================================
// HEALTH
// ========================================

// pinger được implement bởi *database.PostgresDB và *cache.RedisClient
type pinger interface {
	HealthCheck(ctx context.Context) error
}

// poolReporter được implement bởi *database.PostgresDB
type poolReporter interface {
	Stats() (*database.PoolStats, error)
}

func healthCheckHandler(version string, deps map[string]pinger, pool poolReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		services := gin.H{}

		for name, dep := range deps {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			err := dep.HealthCheck(ctx)
			cancel()

			if err != nil {
				services[name] = "error: " + err.Error()
				status = "degraded"
				continue
			}
			services[name] = "ok"
		}

		code := http.StatusOK
		if status != "ok" {
			code = http.StatusServiceUnavailable
		}

		body := gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"services":  services,
		}
		if pool != nil {
			if stats, err := pool.Stats(); err == nil {
				body["database_pool"] = stats
			}
		}

		c.JSON(code, body)
	}
}
