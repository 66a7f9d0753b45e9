package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/api/metrics"
	"github.com/infohub/infohub-api/internal/core/ports"
)

const resourceContact = "contact"

// ContactHandler handles HTTP requests for contacts.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create handles POST /contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string                true  "Required correlation header"
// @Param        body             body      createContactRequest  true  "Contact"
// @Success      201              {object}  domain.Contact
// @Failure      401              {object}  detailResponse
// @Failure      422              {object}  detailResponse
// @Router       /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.ObserveOperation(resourceContact, "create", err)
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), req.toInput())
	metrics.ObserveOperation(resourceContact, "create", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// List handles GET /contacts.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Success      200              {array}   domain.Contact
// @Failure      401              {object}  detailResponse
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	metrics.ObserveOperation(resourceContact, "list", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// Get handles GET /contacts/:id.
//
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Contact id"
// @Success      200              {object}  domain.Contact
// @Failure      404              {object}  detailResponse
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), id)
	metrics.ObserveOperation(resourceContact, "get", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /contacts/:id.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        X-Custom-Header  header    string  true  "Required correlation header"
// @Param        id               path      string  true  "Contact id"
// @Success      200              {object}  detailResponse
// @Failure      404              {object}  detailResponse
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), id)
	metrics.ObserveOperation(resourceContact, "delete", err)
	if err != nil {
		return err
	}
	return deleted(c, "Contact")
}
