package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

var _ ports.UnitOfWork = (*Store)(nil)

// Queryer is satisfied by both *sql.DB and *sql.Tx.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store runs each unit of work in its own database transaction.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Do begins a transaction, hands its repositories to fn and commits when fn
// succeeds. The transaction is rolled back on error or panic; database/sql
// also rolls it back when ctx is cancelled before commit.
func (s *Store) Do(ctx context.Context, fn func(tx ports.Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(newTx(sqlTx)); err != nil {
		return err
	}
	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type tx struct {
	users    *UserRepository
	contacts *ContactRepository
	articles *ArticleRepository
	comments *CommentRepository
}

func newTx(q Queryer) *tx {
	return &tx{
		users:    NewUserRepository(q),
		contacts: NewContactRepository(q),
		articles: NewArticleRepository(q),
		comments: NewCommentRepository(q),
	}
}

func (t *tx) Users() ports.UserRepository       { return t.users }
func (t *tx) Contacts() ports.ContactRepository { return t.contacts }
func (t *tx) Articles() ports.ArticleRepository { return t.articles }
func (t *tx) Comments() ports.CommentRepository { return t.comments }

// deleteByID removes one row and reports domain.ErrNotFound when none matched.
func deleteByID(ctx context.Context, q Queryer, table, resource, id string) error {
	res, err := q.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	if n == 0 {
		return domain.NotFound(resource)
	}
	return nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
