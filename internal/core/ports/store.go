package ports

import (
	"context"

	"github.com/infohub/infohub-api/internal/core/domain"
)

// UnitOfWork scopes a group of repository calls to one transaction.
//
// Do commits when fn returns nil and rolls back on any error, panic or
// context cancellation. Nothing fn wrote is visible to other requests
// until Do returns nil.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the repositories bound to a single transaction.
type Tx interface {
	Users() UserRepository
	Contacts() ContactRepository
	Articles() ArticleRepository
	Comments() CommentRepository
}

// ContactRepository persists contacts. Find and Delete return
// domain.ErrNotFound when no row matches.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ArticleRepository persists articles.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) error
	List(ctx context.Context) ([]domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// SearchContent returns articles whose content contains keyword (case-sensitive).
	SearchContent(ctx context.Context, keyword string) ([]domain.Article, error)
	// ListCreatedBetween returns articles with r.Start < created_at < r.End.
	ListCreatedBetween(ctx context.Context, r domain.DateRange) ([]domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	List(ctx context.Context) ([]domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByArticle(ctx context.Context, articleID string) error
}

// Pinger is implemented by stores that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
