package usecase

import (
	"context"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// ArticleUseCase implements article business logic
type ArticleUseCase struct {
	articleRepo port.ArticleRepository
}

// NewArticleUseCase creates a new ArticleUseCase instance
func NewArticleUseCase(articleRepo port.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
	}
}

// List returns the full article catalog.
func (uc *ArticleUseCase) List(ctx context.Context) ([]*domain.Article, error) {
	return uc.articleRepo.List(ctx)
}

// Get returns a single article.
func (uc *ArticleUseCase) Get(ctx context.Context, articleID int64) (*domain.Article, error) {
	return uc.articleRepo.GetByID(ctx, articleID)
}

// Create stores a new article.
func (uc *ArticleUseCase) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update merges a partial update into an article. Present fields must
// satisfy the same rules as on create.
func (uc *ArticleUseCase) Update(ctx context.Context, articleID int64, patch domain.ArticlePatch) (*domain.Article, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	article, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	article.Apply(patch)

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Delete removes an article.
func (uc *ArticleUseCase) Delete(ctx context.Context, articleID int64) error {
	return uc.articleRepo.Delete(ctx, articleID)
}
