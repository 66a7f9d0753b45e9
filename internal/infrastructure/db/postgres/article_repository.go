package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const articleColumns = `id, title, content, author_name, author_email, created_at`

type ArticleRepository struct {
	q Queryer
}

func NewArticleRepository(q Queryer) *ArticleRepository {
	return &ArticleRepository{q: q}
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO articles (`+articleColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Title, a.Content, a.Author.Name, a.Author.Email, a.CreatedAt,
	)
	if err != nil {
		return classify("insert article", err)
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	return r.query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY seq`)
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("article")
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return a, nil
}

// SearchContent matches keyword literally; LIKE wildcards in it are escaped.
func (r *ArticleRepository) SearchContent(ctx context.Context, keyword string) ([]domain.Article, error) {
	return r.query(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE content LIKE $1 ESCAPE '\' ORDER BY seq`,
		"%"+escapeLike(keyword)+"%",
	)
}

func (r *ArticleRepository) ListCreatedBetween(ctx context.Context, dr domain.DateRange) ([]domain.Article, error) {
	return r.query(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE created_at > $1 AND created_at < $2 ORDER BY seq`,
		dr.Start, dr.End,
	)
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "articles", "article", id)
}

func (r *ArticleRepository) query(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func scanArticle(s scanner) (*domain.Article, error) {
	var a domain.Article
	if err := s.Scan(&a.ID, &a.Title, &a.Content, &a.Author.Name, &a.Author.Email, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
