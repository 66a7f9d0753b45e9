package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/api/metrics"
	"github.com/infohub/infohub-api/internal/core/ports"
)

const resourceArticle = "article"

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string                true  "Required correlation header"
// @Param        body             body      createArticleRequest  true  "Article"
// @Success      201              {object}  domain.Article
// @Failure      422              {object}  detailResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.ObserveOperation(resourceArticle, "create", err)
		return err
	}

	article, err := h.service.Create(c.Request().Context(), req.toInput())
	metrics.ObserveOperation(resourceArticle, "create", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// List handles GET /articles.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Success      200              {array}   domain.Article
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	metrics.ObserveOperation(resourceArticle, "list", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Get handles GET /articles/:id.
//
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Article id"
// @Success      200              {object}  domain.Article
// @Failure      404              {object}  detailResponse
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	article, err := h.service.Get(c.Request().Context(), id)
	metrics.ObserveOperation(resourceArticle, "get", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /articles/:id. Comments on the article go with it.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Article id"
// @Success      200              {object}  detailResponse
// @Failure      404              {object}  detailResponse
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), id)
	metrics.ObserveOperation(resourceArticle, "delete", err)
	if err != nil {
		return err
	}
	return deleted(c, "Article")
}

// Search handles GET /articles/search?keyword=.
//
// @Summary      Search articles by content
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        keyword          query     string  true  "Case-sensitive substring of the content"
// @Success      200              {array}   domain.Article
// @Failure      404              {object}  detailResponse
// @Router       /articles/search [get]
func (h *ArticleHandler) Search(c echo.Context) error {
	keyword, err := keywordParam(c)
	if err != nil {
		return err
	}

	articles, err := h.service.Search(c.Request().Context(), keyword)
	metrics.ObserveOperation(resourceArticle, "search", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Filter handles GET /articles/filter?date_start=&date_end=.
//
// @Summary      Filter articles by creation time
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        date_start       query     string  true  "Exclusive lower bound"
// @Param        date_end         query     string  true  "Exclusive upper bound"
// @Success      200              {array}   domain.Article
// @Failure      404              {object}  detailResponse
// @Failure      422              {object}  detailResponse
// @Router       /articles/filter [get]
func (h *ArticleHandler) Filter(c echo.Context) error {
	dr, err := dateRangeParams(c)
	if err != nil {
		return err
	}

	articles, err := h.service.FilterByDate(c.Request().Context(), dr)
	metrics.ObserveOperation(resourceArticle, "filter", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}
