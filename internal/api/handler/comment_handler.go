package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/api/metrics"
	"github.com/infohub/infohub-api/internal/core/ports"
)

const resourceComment = "comment"

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /comments.
//
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string                true  "Required correlation header"
// @Param        body             body      createCommentRequest  true  "Comment"
// @Success      201              {object}  domain.Comment
// @Failure      422              {object}  detailResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.ObserveOperation(resourceComment, "create", err)
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), req.toInput())
	metrics.ObserveOperation(resourceComment, "create", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// List handles GET /comments.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Success      200              {array}   domain.Comment
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context())
	metrics.ObserveOperation(resourceComment, "list", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Get handles GET /comments/:id.
//
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Comment id"
// @Success      200              {object}  domain.Comment
// @Failure      404              {object}  detailResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Get(c.Request().Context(), id)
	metrics.ObserveOperation(resourceComment, "get", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Comment id"
// @Success      200              {object}  detailResponse
// @Failure      404              {object}  detailResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), id)
	metrics.ObserveOperation(resourceComment, "delete", err)
	if err != nil {
		return err
	}
	return deleted(c, "Comment")
}
