package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/flowsmith/graphstore/internal/api/handler"
	"github.com/flowsmith/graphstore/internal/api/middleware"
	"github.com/flowsmith/graphstore/internal/core/domain"
	"github.com/flowsmith/graphstore/internal/core/ports"
	storemongo "github.com/flowsmith/graphstore/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs to register routes.
type Deps struct {
	Conn     *storemongo.Conn
	Redis    *redis.Client
	Users    ports.UserService
	Products ports.ProductService
	Graphs   ports.GraphService
	Auth     ports.AuthService
	Generate ports.GenerateService

	// JWTSecret, when non-empty, puts mutating routes behind bearer auth and
	// delete routes behind the admin role. Empty leaves the API open.
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("graphstore"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users)
	productHandler := handler.NewProductHandler(deps.Products)
	graphHandler := handler.NewGraphHandler(deps.Graphs)
	generateHandler := handler.NewGenerateHandler(deps.Generate)
	authHandler := handler.NewAuthHandler(deps.Auth)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Conn, deps.Redis)

	// Write-route guards are no-ops until a JWT secret is configured.
	var guard, adminGuard []echo.MiddlewareFunc
	if deps.JWTSecret != "" {
		authMW := middleware.Auth(deps.JWTSecret)
		guard = []echo.MiddlewareFunc{authMW}
		adminGuard = []echo.MiddlewareFunc{authMW, middleware.RequireRole(domain.RoleAdmin)}
	}

	// --- Document store routes ---
	g := e.Group("/api/generator")

	g.POST("/users", userHandler.Create, guard...)
	g.GET("/users", userHandler.List)
	g.GET("/users/:id", userHandler.Get)
	g.PUT("/users/:id", userHandler.Update, guard...)
	g.DELETE("/users/:id", userHandler.Delete, adminGuard...)

	g.POST("/products", productHandler.Create, guard...)
	g.GET("/products", productHandler.List)
	g.GET("/products/:id", productHandler.Get)
	g.PUT("/products/:id", productHandler.Update, guard...)
	g.DELETE("/products/:id", productHandler.Delete, adminGuard...)

	g.POST("/graphs", graphHandler.Create, guard...)
	g.GET("/graphs", graphHandler.List)
	g.GET("/graphs/:id", graphHandler.Get)
	g.PUT("/graphs/:id", graphHandler.Update, guard...)
	g.DELETE("/graphs/:id", graphHandler.Delete, adminGuard...)
	g.PUT("/graphs/:user_id/:graph_id", graphHandler.SetGraph, guard...)
	g.GET("/graphs/:user_id/:graph_id", graphHandler.GetGraph)

	// --- Code generation ---
	e.POST("/api/generate", generateHandler.Generate, guard...)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
