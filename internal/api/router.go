package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eventstaff/hospitality-hub/docs"
	"github.com/eventstaff/hospitality-hub/internal/api/handler"
	"github.com/eventstaff/hospitality-hub/internal/api/middleware"
	"github.com/eventstaff/hospitality-hub/internal/auth"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/service"
	mongostore "github.com/eventstaff/hospitality-hub/internal/infrastructure/db/mongo"
	redisstore "github.com/eventstaff/hospitality-hub/internal/infrastructure/db/redis"
	"github.com/eventstaff/hospitality-hub/internal/pkg/config"
	"github.com/eventstaff/hospitality-hub/pkg/logger"
)

// Deps are the connections and long-lived workers the router wires handlers to.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Audit  service.AuditSink
	Config *config.Config
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("http"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospitality"))

	// --- Dependencies ---
	tokens := auth.NewTokenManager(d.Config.JWTSecret)
	sessions := redisstore.NewSessionStore(d.Redis)
	guard := redisstore.NewInFlightGuard(d.Redis, d.Config.InFlightTTL)

	accounts := mongostore.NewAccountRepository(d.DB)
	profiles := mongostore.NewProfileRepository(d.DB)
	events := mongostore.NewEventRepository(d.DB)
	vendors := mongostore.NewVendorRepository(d.DB)
	documents := mongostore.NewDocumentStorage(d.DB)

	identity := service.NewIdentityService(accounts, sessions, tokens, d.Config.SessionTTL)
	roleRouter := service.NewRoleRouter(identity, d.Audit, logger.Component("role_router"))
	signup := service.NewSignupService(accounts, profiles, logger.Component("signup"))
	eventService := service.NewEventService(events, logger.Component("events"))
	vendorService := service.NewVendorService(vendors, events, documents, logger.Component("vendors"))

	authHandler := handler.NewAuthHandler(roleRouter, signup, identity)
	eventHandler := handler.NewEventHandler(eventService)
	vendorHandler := handler.NewVendorHandler(vendorService, d.Config.MaxUploadBytes)

	authMiddleware := middleware.Auth(tokens, sessions)
	guardLog := logger.Component("inflight")
	inFlight := func(route string, keys ...middleware.KeyFunc) echo.MiddlewareFunc {
		return middleware.InFlight(guard, route, guardLog, keys...)
	}

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup, inFlight("signup", middleware.BodyEmail))
	e.POST("/auth/login", authHandler.Login, inFlight("login", middleware.BodyEmail))
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/session", authHandler.Session, authMiddleware)

	// --- Dashboards ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id/positions", eventHandler.Positions)

	organiser := v1.Group("/organiser", middleware.RBAC(domain.RoleOrganiser))
	organiser.POST("/events", eventHandler.Create, inFlight("create_event"))

	vendor := v1.Group("/vendor", middleware.RBAC(domain.RoleVendor))
	vendor.GET("/profile", vendorHandler.GetProfile)
	vendor.PUT("/profile", vendorHandler.SaveProfile)
	vendor.GET("/applications", vendorHandler.Applications)
	vendor.POST("/applications", vendorHandler.Apply, inFlight("apply"))
	vendor.POST("/documents", vendorHandler.UploadDocument, inFlight("upload_document"))

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(map[string]handler.DependencyCheck{
		"mongodb": func(ctx context.Context) error { return d.DB.Client().Ping(ctx, nil) },
		"redis":   func(ctx context.Context) error { return d.Redis.Ping(ctx).Err() },
	})

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
