package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"nextpath/app/domain"
	"nextpath/app/port"
	"nextpath/app/utils/validator"
)

// ArticleHandler handles article catalog HTTP requests
type ArticleHandler struct {
	articleUsecase port.ArticleUsecase
	validator      *validator.Validator
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleUsecase port.ArticleUsecase, validator *validator.Validator, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		validator:      validator,
		logger:         logger.With("component", "article_handler"),
	}
}

type createArticleRequest struct {
	Author      string `json:"author" validate:"required"`
	Desc        string `json:"desc" validate:"required"`
	PublishYear int    `json:"publish_year" validate:"required,year4"`
	Title       string `json:"title" validate:"required"`
	URLArticle  string `json:"url_article" validate:"required,url"`
	URLImage    string `json:"url_image" validate:"required,url"`
}

type updateArticleRequest struct {
	Author      *string `json:"author" validate:"omitempty,min=1"`
	Desc        *string `json:"desc" validate:"omitempty,min=1"`
	PublishYear *int    `json:"publish_year" validate:"omitempty,year4"`
	Title       *string `json:"title" validate:"omitempty,min=1"`
	URLArticle  *string `json:"url_article" validate:"omitempty,url"`
	URLImage    *string `json:"url_image" validate:"omitempty,url"`
}

// List handles GET /api/article
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleUsecase.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /api/article/:id
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
	}

	article, err := h.articleUsecase.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, article)
}

// Create handles POST /api/article
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	article, err := domain.NewArticle(req.Author, req.Desc, req.PublishYear, req.Title, req.URLArticle, req.URLImage)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	created, err := h.articleUsecase.Create(c.Request().Context(), article)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("article created", "article_id", created.ID)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/article/:id. Present fields must satisfy the
// create rules.
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	patch := domain.ArticlePatch{
		Author:      req.Author,
		Desc:        req.Desc,
		PublishYear: req.PublishYear,
		Title:       req.Title,
		URLArticle:  req.URLArticle,
		URLImage:    req.URLImage,
	}

	article, err := h.articleUsecase.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/article/:id
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
	}

	if err := h.articleUsecase.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Article deleted"})
}

// parseID parses a positive numeric path parameter.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
