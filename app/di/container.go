package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"nextpath/app/config"
	"nextpath/app/driver/postgres"
	"nextpath/app/gateway"
	"nextpath/app/port"
	"nextpath/app/rest"
	"nextpath/app/usecase"
	"nextpath/app/utils/token"
)

// How often expired entries are purged from the revocation blacklist.
const tokenReapInterval = time.Hour

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	DB *postgres.DB

	TokenRepository port.TokenRepository
	ChatGateway     port.ChatGateway

	AuthUsecase    port.AuthUsecase
	GoalUsecase    port.GoalUsecase
	ArticleUsecase port.ArticleUsecase
	ChatUsecase    port.ChatUsecase

	reaperCancel context.CancelFunc
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	tokenRepository := postgres.NewTokenRepository(container.DB.Pool(), logger)
	goalRepository := postgres.NewGoalRepository(container.DB.Pool(), logger)
	articleRepository := postgres.NewArticleRepository(container.DB.Pool(), logger)
	container.TokenRepository = tokenRepository

	issuer := token.NewJWTIssuer(token.JWTConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})

	chatGateway := gateway.NewChatGateway(cfg.ChatAPIURL, logger)
	container.ChatGateway = chatGateway

	container.AuthUsecase = usecase.NewAuthUseCase(userRepository, tokenRepository, issuer)
	container.GoalUsecase = usecase.NewGoalUseCase(goalRepository)
	container.ArticleUsecase = usecase.NewArticleUseCase(articleRepository)
	container.ChatUsecase = usecase.NewChatUseCase(chatGateway)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		Config:         c.Config,
		AuthUsecase:    c.AuthUsecase,
		GoalUsecase:    c.GoalUsecase,
		ArticleUsecase: c.ArticleUsecase,
		ChatUsecase:    c.ChatUsecase,
		ChatGateway:    c.ChatGateway,
		DB:             c.DB,
	})
}

// StartTokenReaper launches a background loop that removes expired
// entries from the token blacklist so it does not grow without bound.
func (c *Container) StartTokenReaper() {
	ctx, cancel := context.WithCancel(context.Background())
	c.reaperCancel = cancel

	go func() {
		ticker := time.NewTicker(tokenReapInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := c.TokenRepository.DeleteExpired(ctx)
				if err != nil {
					c.Logger.Error("failed to purge expired revoked tokens", "error", err)
					continue
				}
				if deleted > 0 {
					c.Logger.Info("purged expired revoked tokens", "count", deleted)
				}
			}
		}
	}()
}

// Close closes all resources
func (c *Container) Close() error {
	if c.reaperCancel != nil {
		c.reaperCancel()
	}

	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
