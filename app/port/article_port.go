package port

//go:generate mockgen -source=article_port.go -destination=../mocks/mock_article_port.go

import (
	"context"

	"nextpath/app/domain"
)

// ArticleUsecase defines article business logic
type ArticleUsecase interface {
	List(ctx context.Context) ([]*domain.Article, error)
	Get(ctx context.Context, articleID int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Update(ctx context.Context, articleID int64, patch domain.ArticlePatch) (*domain.Article, error)
	Delete(ctx context.Context, articleID int64) error
}

// ArticleRepository defines article data access
type ArticleRepository interface {
	List(ctx context.Context) ([]*domain.Article, error)
	GetByID(ctx context.Context, articleID int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, articleID int64) error
}
