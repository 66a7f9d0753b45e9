package ports

import (
	"context"
	"time"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// CreateCommentInput is a validated comment payload.
type CreateCommentInput struct {
	ArticleID  string
	AuthorName string
	Content    string
	CreatedAt  *time.Time // optional, defaults to now
}

// CommentService implements the comment use cases.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
	Get(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
