package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// ArticleRepository implements port.ArticleRepository for PostgreSQL
type ArticleRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewArticleRepository creates a new PostgreSQL article repository
func NewArticleRepository(db DatabaseIface, logger *slog.Logger) port.ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

// List returns all articles, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	query := `
		SELECT id, author, description, publish_year, title, url_article, url_image,
		       created_at, updated_at
		FROM articles
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list articles", "error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*domain.Article, 0)
	for rows.Next() {
		article := &domain.Article{}
		err := rows.Scan(
			&article.ID,
			&article.Author,
			&article.Desc,
			&article.PublishYear,
			&article.Title,
			&article.URLArticle,
			&article.URLImage,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("failed to scan article", "error", err)
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

// GetByID retrieves an article by id
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	query := `
		SELECT id, author, description, publish_year, title, url_article, url_image,
		       created_at, updated_at
		FROM articles
		WHERE id = $1`

	article := &domain.Article{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Author,
		&article.Desc,
		&article.PublishYear,
		&article.Title,
		&article.URLArticle,
		&article.URLImage,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		r.logger.Error("failed to get article", "article_id", id, "error", err)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return article, nil
}

// Create inserts an article and fills in its generated id.
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (author, description, publish_year, title, url_article, url_image,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		article.Author,
		article.Desc,
		article.PublishYear,
		article.Title,
		article.URLArticle,
		article.URLImage,
		article.CreatedAt,
		article.UpdatedAt,
	).Scan(&article.ID)

	if err != nil {
		r.logger.Error("failed to create article", "title", article.Title, "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	r.logger.Info("article created", "article_id", article.ID)
	return nil
}

// Update persists the full state of an article.
func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET author = $1, description = $2, publish_year = $3, title = $4,
		    url_article = $5, url_image = $6, updated_at = $7
		WHERE id = $8`

	result, err := r.db.Exec(ctx, query,
		article.Author,
		article.Desc,
		article.PublishYear,
		article.Title,
		article.URLArticle,
		article.URLImage,
		article.UpdatedAt,
		article.ID,
	)

	if err != nil {
		r.logger.Error("failed to update article", "article_id", article.ID, "error", err)
		return fmt.Errorf("failed to update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	r.logger.Info("article updated", "article_id", article.ID)
	return nil
}

// Delete removes an article by id.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete article", "article_id", id, "error", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	r.logger.Info("article deleted", "article_id", id)
	return nil
}
