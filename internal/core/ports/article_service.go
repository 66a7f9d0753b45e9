package ports

import (
	"context"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// CreateArticleInput is a validated article payload.
type CreateArticleInput struct {
	Title   string
	Content string
	Author  domain.Author
}

// ArticleService implements the article use cases.
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	// Search and FilterByDate return domain.ErrNotFound when nothing matches.
	Search(ctx context.Context, keyword string) ([]domain.Article, error)
	FilterByDate(ctx context.Context, r domain.DateRange) ([]domain.Article, error)
}
