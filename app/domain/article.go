package domain

import (
	"net/url"
	"time"
)

// Article represents a globally readable catalog entry. Articles have no
// owner; write access is governed by the configured article write policy.
type Article struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	Desc        string    `json:"desc"`
	PublishYear int       `json:"publish_year"`
	Title       string    `json:"title"`
	URLArticle  string    `json:"url_article"`
	URLImage    string    `json:"url_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewArticle creates an article after validating all six content fields.
func NewArticle(author, desc string, publishYear int, title, urlArticle, urlImage string) (*Article, error) {
	if author == "" {
		return nil, NewValidationError("author", author, "author is required")
	}
	if desc == "" {
		return nil, NewValidationError("desc", desc, "desc is required")
	}
	if err := validatePublishYear(publishYear); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, NewValidationError("title", title, "title is required")
	}
	if err := validateURL("url_article", urlArticle); err != nil {
		return nil, err
	}
	if err := validateURL("url_image", urlImage); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Article{
		Author:      author,
		Desc:        desc,
		PublishYear: publishYear,
		Title:       title,
		URLArticle:  urlArticle,
		URLImage:    urlImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ArticlePatch carries the optional fields of an article update. Each
// present field must satisfy the same rules as on create.
type ArticlePatch struct {
	Author      *string
	Desc        *string
	PublishYear *int
	Title       *string
	URLArticle  *string
	URLImage    *string
}

// Validate checks every present field against the create rules.
func (p ArticlePatch) Validate() error {
	if p.Author != nil && *p.Author == "" {
		return NewValidationError("author", *p.Author, "author must not be empty")
	}
	if p.Desc != nil && *p.Desc == "" {
		return NewValidationError("desc", *p.Desc, "desc must not be empty")
	}
	if p.PublishYear != nil {
		if err := validatePublishYear(*p.PublishYear); err != nil {
			return err
		}
	}
	if p.Title != nil && *p.Title == "" {
		return NewValidationError("title", *p.Title, "title must not be empty")
	}
	if p.URLArticle != nil {
		if err := validateURL("url_article", *p.URLArticle); err != nil {
			return err
		}
	}
	if p.URLImage != nil {
		if err := validateURL("url_image", *p.URLImage); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into the article.
func (a *Article) Apply(patch ArticlePatch) {
	if patch.Author != nil {
		a.Author = *patch.Author
	}
	if patch.Desc != nil {
		a.Desc = *patch.Desc
	}
	if patch.PublishYear != nil {
		a.PublishYear = *patch.PublishYear
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.URLArticle != nil {
		a.URLArticle = *patch.URLArticle
	}
	if patch.URLImage != nil {
		a.URLImage = *patch.URLImage
	}
	a.UpdatedAt = time.Now()
}

// validatePublishYear enforces the 4-digit year contract.
func validatePublishYear(year int) error {
	if year < 1000 || year > 9999 {
		return NewValidationError("publish_year", year, "publish_year must be a 4-digit year")
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NewValidationError(field, raw, field+" must be a valid URL")
	}
	return nil
}
