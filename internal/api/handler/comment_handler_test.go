package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type stubCommentService struct {
	createFn func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error)
	listFn   func(ctx context.Context) ([]domain.Comment, error)
	getFn    func(ctx context.Context, id string) (*domain.Comment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	return s.createFn(ctx, in)
}

func (s *stubCommentService) List(ctx context.Context) ([]domain.Comment, error) {
	return s.listFn(ctx)
}

func (s *stubCommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.getFn(ctx, id)
}

func (s *stubCommentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestCommentHandler_Create_PassesOptionalTimestamp(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		createFn: func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
			if in.CreatedAt == nil || !in.CreatedAt.Equal(time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected created_at: %v", in.CreatedAt)
			}
			return &domain.Comment{ID: "m1", ArticleID: in.ArticleID, AuthorName: in.AuthorName, Content: in.Content, CreatedAt: *in.CreatedAt}, nil
		},
	}
	handler := NewCommentHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/comments",
		`{"article_id":"a1","author_name":"Bob","content":"nice","created_at":"2024-02-01T08:00:00Z"}`), rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCommentHandler_Create_TimestampLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-01T10:00:00":       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		"2024-01-01":                time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"2024-01-01T12:00:00+02:00": time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		e := newTestEcho()
		var got *time.Time
		stub := &stubCommentService{
			createFn: func(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
				got = in.CreatedAt
				return &domain.Comment{ID: "m1", CreatedAt: *in.CreatedAt}, nil
			},
		}

		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/comments",
			`{"article_id":"a1","author_name":"Bob","content":"nice","created_at":"`+raw+`"}`), rec)

		if err := NewCommentHandler(stub).Create(c); err != nil {
			t.Fatalf("%s: handler error: %v", raw, err)
		}
		if got == nil || !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", raw, want, got)
		}
	}
}

func TestCommentHandler_Create_BadTimestamp(t *testing.T) {
	e := newTestEcho()
	handler := NewCommentHandler(&stubCommentService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/comments",
		`{"article_id":"a1","author_name":"Bob","content":"nice","created_at":"yesterday"}`), rec)

	err := handler.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Error() != `"yesterday" is not a date or datetime` {
		t.Fatalf("unexpected message %q", ve.Error())
	}
}

func TestCommentHandler_Create_Invalid(t *testing.T) {
	e := newTestEcho()
	handler := NewCommentHandler(&stubCommentService{})

	c := e.NewContext(jsonRequest(http.MethodPost, "/comments", `{"article_id":"a1","author_name":"B","content":""}`), httptest.NewRecorder())

	var ve *domain.ValidationError
	if err := handler.Create(c); !errors.As(err, &ve) || len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", err)
	}
}

func TestCommentHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCommentService{
		deleteFn: func(ctx context.Context, id string) error { return domain.NotFound("comment") },
	}
	handler := NewCommentHandler(stub)

	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/comments/m1", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
