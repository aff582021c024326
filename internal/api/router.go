package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/avinash2017colab/part-time-tracker/internal/api/handler"
	"github.com/avinash2017colab/part-time-tracker/internal/api/middleware"
	"github.com/avinash2017colab/part-time-tracker/internal/core/service"
	mongodb "github.com/avinash2017colab/part-time-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/avinash2017colab/part-time-tracker/internal/infrastructure/db/redis"
	"github.com/avinash2017colab/part-time-tracker/internal/infrastructure/http/handlers"
)

// Options carries the settings the router needs beyond its infrastructure
// handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Location is the zone the dashboard week boundary is computed in.
	Location *time.Location
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("timetracker"))

	// --- Dependencies ---
	tokenStore := redisdb.NewTokenStore(rdb)

	authRepo := mongodb.NewAuthRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	shiftRepo := mongodb.NewShiftRepository(db)

	authService := service.NewAuthService(authRepo, tokenStore, opts.JWTSecret, opts.TokenTTL, log)
	jobService := service.NewJobService(jobRepo, log)
	shiftService := service.NewShiftService(shiftRepo, jobRepo, log)
	dashboardService := service.NewDashboardService(jobRepo, shiftRepo, opts.Location, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authMiddleware := middleware.Auth(opts.JWTSecret, tokenStore)

	// --- Public auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset", authHandler.RequestReset)
	e.POST("/auth/reset/confirm", authHandler.ConfirmReset)

	// --- Session routes (require an active session) ---
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Protected API ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create)
	v1.PUT("/jobs/:id", jobHandler.Update)
	v1.DELETE("/jobs/:id", jobHandler.Delete)

	v1.GET("/shifts", shiftHandler.List)
	v1.POST("/shifts", shiftHandler.Create)
	v1.PUT("/shifts/:id", shiftHandler.Update)
	v1.DELETE("/shifts/:id", shiftHandler.Delete)

	v1.GET("/dashboard", dashboardHandler.Summary)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
