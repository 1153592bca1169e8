package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/formalshoes/store-api/internal/api/handler"
	"github.com/formalshoes/store-api/internal/api/middleware"
	"github.com/formalshoes/store-api/internal/core/service"
	mongodb "github.com/formalshoes/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/formalshoes/store-api/internal/infrastructure/db/redis"
	"github.com/formalshoes/store-api/internal/pkg/config"
	"github.com/formalshoes/store-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokens, log)
	catalogService := service.NewCatalogService(productRepo, productCache, log)
	orderService := service.NewOrderService(orderRepo, catalogService, cfg.ShippingFee, cfg.FreeShippingThreshold, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	requireAuth := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public catalog ---
	e.GET("/shoes", productHandler.List)
	e.GET("/shoes/:id", productHandler.Get)
	e.POST("/seed", productHandler.Seed)

	// --- Orders (authenticated) ---
	orders := e.Group("/orders", requireAuth)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
