package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type stubContactService struct {
	createFn func(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error)
	listFn   func(ctx context.Context) ([]domain.Contact, error)
	getFn    func(ctx context.Context, id string) (*domain.Contact, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubContactService) Create(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
	return s.createFn(ctx, in)
}

func (s *stubContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.listFn(ctx)
}

func (s *stubContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.getFn(ctx, id)
}

func (s *stubContactService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestContactHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		createFn: func(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
			if in.PhoneNumber != "+380(66)-123-45-78" || in.LastName != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Contact{ID: "c1", FirstName: in.FirstName, Email: in.Email, Username: in.Username, PhoneNumber: in.PhoneNumber}, nil
		},
	}
	handler := NewContactHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/contacts",
		`{"first_name":"Taras","email":"t@example.com","username":"taras","phone_number":"+380(66)-123-45-78"}`), rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "c1" || resp["last_name"] != nil {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestContactHandler_Create_RejectsBadPhones(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		createFn: func(ctx context.Context, in ports.CreateContactInput) (*domain.Contact, error) {
			t.Fatalf("service must not be called for %q", in.PhoneNumber)
			return nil, nil
		},
	}
	handler := NewContactHandler(stub)

	for _, phone := range []string{
		"+380(66)-123-45-7",   // too short
		"+380(66)-123-45-789", // too long
		"+381(66)-123-45-78",  // wrong country
		"+380 66 123 45 78",
		"+380(6a)-123-45-78",
	} {
		body := `{"first_name":"Taras","email":"t@example.com","username":"taras","phone_number":"` + phone + `"}`
		c := e.NewContext(jsonRequest(http.MethodPost, "/contacts", body), httptest.NewRecorder())

		err := handler.Create(c)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", phone, err)
		}
		if ve.Fields[0].Field != "phone_number" {
			t.Fatalf("%s: expected phone_number field, got %+v", phone, ve.Fields)
		}
	}
}

func TestContactHandler_Create_FieldBounds(t *testing.T) {
	e := newTestEcho()
	handler := NewContactHandler(&stubContactService{})

	body := `{"first_name":"T","email":"t@example.com","username":"taras","phone_number":"+380(66)-123-45-78","address":"` +
		strings.Repeat("a", 151) + `"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/contacts", body), httptest.NewRecorder())

	err := handler.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", err)
	}
	if !strings.Contains(ve.Error(), "first_name must be at least 2 characters") ||
		!strings.Contains(ve.Error(), "address must be at most 150 characters") {
		t.Fatalf("unexpected messages: %s", ve.Error())
	}
}

func TestContactHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		listFn: func(ctx context.Context) ([]domain.Contact, error) {
			return []domain.Contact{}, nil
		},
	}
	handler := NewContactHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/contacts", nil), rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		getFn: func(ctx context.Context, id string) (*domain.Contact, error) {
			if id != "abc" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil, domain.NotFound("contact")
		},
	}
	handler := NewContactHandler(stub)

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/contacts/abc", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContactHandler_Get_IDTooLong(t *testing.T) {
	e := newTestEcho()
	handler := NewContactHandler(&stubContactService{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/contacts/x", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(strings.Repeat("x", 101))

	if err := handler.Get(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestContactHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubContactService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	handler := NewContactHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/contacts/c1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"detail":"Contact deleted"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}
