package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"nextpath/app/config"
	"nextpath/app/port"
	"nextpath/app/rest/handlers"
	custommw "nextpath/app/rest/middleware"
	"nextpath/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	Config         *config.Config
	AuthUsecase    port.AuthUsecase
	GoalUsecase    port.GoalUsecase
	ArticleUsecase port.ArticleUsecase
	ChatUsecase    port.ChatUsecase
	ChatGateway    port.ChatGateway
	DB             handlers.DBHealthChecker
}

// NewRouter creates and configures the Echo router
func NewRouter(rc RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	v := validator.New()

	authHandler := handlers.NewAuthHandler(rc.AuthUsecase, v, rc.Logger)
	goalHandler := handlers.NewGoalHandler(rc.GoalUsecase, v, rc.Logger)
	articleHandler := handlers.NewArticleHandler(rc.ArticleUsecase, v, rc.Logger)
	chatHandler := handlers.NewChatHandler(rc.ChatUsecase, v, rc.Logger)
	healthHandler := handlers.NewHealthHandler(rc.DB, rc.ChatGateway, rc.Logger)

	authMiddleware := custommw.NewAuthMiddleware(rc.AuthUsecase, rc.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.NewCORSMiddleware(rc.Config.CORSAllowOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Health endpoints (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/health/live", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)

	api := e.Group("/api")

	// Authentication endpoints
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authProtected := auth.Group("")
	authProtected.Use(authMiddleware.RequireAuth())
	authProtected.GET("/me", authHandler.Me)
	authProtected.POST("/logout", authHandler.Logout)
	authProtected.POST("/refresh", authHandler.Refresh)

	// Goal endpoints (always owner-scoped)
	goals := auth.Group("/goals")
	goals.Use(authMiddleware.RequireAuth())
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.GET("/:id", goalHandler.Get)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)
	goals.PUT("/:id/tasks/:taskId", goalHandler.SetTaskStatus)

	// Article catalog: reads are public, write access follows the
	// configured policy.
	articles := api.Group("/article")
	articles.GET("", articleHandler.List)
	articles.GET("/:id", articleHandler.Get)

	articleWrites := api.Group("/article")
	if rc.Config.ArticleWritePolicy == config.ArticleWriteAuthenticated {
		articleWrites.Use(authMiddleware.RequireAuth())
	}
	articleWrites.POST("", articleHandler.Create)
	articleWrites.PUT("/:id", articleHandler.Update)
	articleWrites.DELETE("/:id", articleHandler.Delete)

	// Chat proxy (public, rate limited)
	api.POST("/chat", chatHandler.Send)

	return e
}
