package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storekit/commerce-api/docs"
	"github.com/storekit/commerce-api/internal/api/handler"
	"github.com/storekit/commerce-api/internal/api/middleware"
	"github.com/storekit/commerce-api/internal/core/service"
	mongodb "github.com/storekit/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storekit/commerce-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/storekit/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	tokenStore := redisdb.NewTokenStore(rdb)

	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	authService := service.NewAuthService(userRepo, tokenStore, jwtSecret, tokenTTL)
	exportService := service.NewExportService(productRepo, orderRepo, log)

	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(authService)
	exportHandler := handler.NewExportHandler(exportService)

	authMiddleware := middleware.Auth(jwtSecret, tokenStore)

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// --- Protected routes ---
	protected := api.Group("", authMiddleware)
	protected.POST("/logout", authHandler.Logout)

	protected.GET("/products", productHandler.List)
	protected.GET("/products/:id", productHandler.Get)
	protected.POST("/products", productHandler.Create)
	protected.PUT("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)

	protected.GET("/orders", orderHandler.List)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.POST("/orders", orderHandler.Create)
	protected.PUT("/orders/:id", orderHandler.Update)
	protected.DELETE("/orders/:id", orderHandler.Delete)

	protected.GET("/export/products/excel", exportHandler.Products)
	protected.GET("/export/orders/excel", exportHandler.Orders)

	// --- Operational endpoints (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
