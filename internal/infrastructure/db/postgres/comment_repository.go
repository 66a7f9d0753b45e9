package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/infohub/infohub-api/internal/core/domain"
)

const commentColumns = `id, article_id, author_name, content, created_at`

type CommentRepository struct {
	q Queryer
}

func NewCommentRepository(q Queryer) *CommentRepository {
	return &CommentRepository{q: q}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO comments (`+commentColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ArticleID, c.AuthorName, c.Content, c.CreatedAt,
	)
	if err != nil {
		return classify("insert comment", err)
	}
	return nil
}

func (r *CommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("comment")
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "comments", "comment", id)
}

func (r *CommentRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("delete comments of article: %w", err)
	}
	return nil
}

func scanComment(s scanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := s.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Content, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}
