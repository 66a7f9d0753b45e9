// Package memory is an in-process implementation of the infohub stores.
//
// Transactions are serialised: Do works on a private copy of the data and
// swaps it in only when the callback succeeds and the context is still live.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

var _ ports.UnitOfWork = (*Store)(nil)

// Store keeps every collection in insertion order.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

type dataset struct {
	users    []domain.User
	contacts []domain.Contact
	articles []domain.Article
	comments []domain.Comment
}

func (d *dataset) clone() *dataset {
	return &dataset{
		users:    slices.Clone(d.users),
		contacts: slices.Clone(d.contacts),
		articles: slices.Clone(d.articles),
		comments: slices.Clone(d.comments),
	}
}

func NewStore() *Store {
	return &Store{data: &dataset{}}
}

// Do runs fn against a snapshot and commits it if fn returns nil.
func (s *Store) Do(ctx context.Context, fn func(tx ports.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(&tx{data: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

type tx struct {
	data *dataset
}

func (t *tx) Users() ports.UserRepository       { return userRepo{t.data} }
func (t *tx) Contacts() ports.ContactRepository { return contactRepo{t.data} }
func (t *tx) Articles() ports.ArticleRepository { return articleRepo{t.data} }
func (t *tx) Comments() ports.CommentRepository { return commentRepo{t.data} }

type userRepo struct{ d *dataset }

func (r userRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.d.users {
		if existing.Username == u.Username || strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrUserExists
		}
	}
	r.d.users = append(r.d.users, *u)
	return nil
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.d.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user")
}

func (r userRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.d.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.NotFound("user")
}

type contactRepo struct{ d *dataset }

func (r contactRepo) Create(_ context.Context, c *domain.Contact) error {
	r.d.contacts = append(r.d.contacts, *c)
	return nil
}

func (r contactRepo) List(context.Context) ([]domain.Contact, error) {
	return slices.Clone(r.d.contacts), nil
}

func (r contactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	i := slices.IndexFunc(r.d.contacts, func(c domain.Contact) bool { return c.ID == id })
	if i < 0 {
		return nil, domain.NotFound("contact")
	}
	c := r.d.contacts[i]
	return &c, nil
}

func (r contactRepo) Delete(_ context.Context, id string) error {
	i := slices.IndexFunc(r.d.contacts, func(c domain.Contact) bool { return c.ID == id })
	if i < 0 {
		return domain.NotFound("contact")
	}
	r.d.contacts = slices.Delete(r.d.contacts, i, i+1)
	return nil
}

type articleRepo struct{ d *dataset }

func (r articleRepo) Create(_ context.Context, a *domain.Article) error {
	r.d.articles = append(r.d.articles, *a)
	return nil
}

func (r articleRepo) List(context.Context) ([]domain.Article, error) {
	return slices.Clone(r.d.articles), nil
}

func (r articleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	i := slices.IndexFunc(r.d.articles, func(a domain.Article) bool { return a.ID == id })
	if i < 0 {
		return nil, domain.NotFound("article")
	}
	a := r.d.articles[i]
	return &a, nil
}

func (r articleRepo) SearchContent(_ context.Context, keyword string) ([]domain.Article, error) {
	return r.filter(func(a domain.Article) bool { return strings.Contains(a.Content, keyword) }), nil
}

func (r articleRepo) ListCreatedBetween(_ context.Context, dr domain.DateRange) ([]domain.Article, error) {
	return r.filter(func(a domain.Article) bool { return dr.Contains(a.CreatedAt) }), nil
}

func (r articleRepo) Delete(_ context.Context, id string) error {
	i := slices.IndexFunc(r.d.articles, func(a domain.Article) bool { return a.ID == id })
	if i < 0 {
		return domain.NotFound("article")
	}
	r.d.articles = slices.Delete(r.d.articles, i, i+1)
	return nil
}

func (r articleRepo) filter(keep func(domain.Article) bool) []domain.Article {
	out := []domain.Article{}
	for _, a := range r.d.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

type commentRepo struct{ d *dataset }

func (r commentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.d.comments = append(r.d.comments, *c)
	return nil
}

func (r commentRepo) List(context.Context) ([]domain.Comment, error) {
	return slices.Clone(r.d.comments), nil
}

func (r commentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	i := slices.IndexFunc(r.d.comments, func(c domain.Comment) bool { return c.ID == id })
	if i < 0 {
		return nil, domain.NotFound("comment")
	}
	c := r.d.comments[i]
	return &c, nil
}

func (r commentRepo) Delete(_ context.Context, id string) error {
	i := slices.IndexFunc(r.d.comments, func(c domain.Comment) bool { return c.ID == id })
	if i < 0 {
		return domain.NotFound("comment")
	}
	r.d.comments = slices.Delete(r.d.comments, i, i+1)
	return nil
}

func (r commentRepo) DeleteByArticle(_ context.Context, articleID string) error {
	r.d.comments = slices.DeleteFunc(r.d.comments, func(c domain.Comment) bool { return c.ArticleID == articleID })
	return nil
}
