package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/infohub/infohub-api/internal/api/handler"
	"github.com/infohub/infohub-api/internal/api/middleware"
	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

const defaultRequiredHeader = "X-Custom-Header"

// Deps carries everything the router needs. Readiness maps dependency names
// to their probes.
type Deps struct {
	Auth           ports.AuthService
	Contacts       ports.ContactService
	Articles       ports.ArticleService
	Comments       ports.CommentService
	Readiness      map[string]ports.Pinger
	RequiredHeader string
	Logger         zerolog.Logger
	// Registry replaces the default Prometheus registry when set.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	header := d.RequiredHeader
	if header == "" {
		header = defaultRequiredHeader
	}
	operational := middleware.PathPrefixSkipper("/health", "/metrics", "/swagger")

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Timing(d.Logger))
	e.Use(middleware.RequiredHeader(header, operational))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "infohub",
		Skipper:    operational,
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	contactHandler := handler.NewContactHandler(d.Contacts)
	articleHandler := handler.NewArticleHandler(d.Articles)
	commentHandler := handler.NewCommentHandler(d.Comments)
	authMiddleware := middleware.Auth(d.Auth)
	anyRole := middleware.RBAC(domain.Roles...)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMiddleware)
	auth.POST("/logout", authHandler.Logout, authMiddleware)

	// --- Resource routes ---
	contacts := e.Group("/contacts", authMiddleware, anyRole)
	contacts.POST("", contactHandler.Create)
	contacts.GET("", contactHandler.List)
	contacts.GET("/:id", contactHandler.Get)
	contacts.DELETE("/:id", contactHandler.Delete)

	articles := e.Group("/articles", authMiddleware, anyRole)
	articles.POST("", articleHandler.Create)
	articles.GET("", articleHandler.List)
	articles.GET("/search", articleHandler.Search)
	articles.GET("/filter", articleHandler.Filter)
	articles.GET("/:id", articleHandler.Get)
	articles.DELETE("/:id", articleHandler.Delete)

	comments := e.Group("/comments", authMiddleware, anyRole)
	comments.POST("", commentHandler.Create)
	comments.GET("", commentHandler.List)
	comments.GET("/:id", commentHandler.Get)
	comments.DELETE("/:id", commentHandler.Delete)

	// --- Health probes and tooling (no header, no auth) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/swagger", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	return e
}
