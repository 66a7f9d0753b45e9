package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type CommentService struct {
	uow    ports.UnitOfWork
	logger zerolog.Logger
}

func NewCommentService(uow ports.UnitOfWork, logger zerolog.Logger) *CommentService {
	return &CommentService{uow: uow, logger: logger}
}

// Create stores a comment on an existing article. CreatedAt defaults to now.
func (s *CommentService) Create(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:         newID(),
		ArticleID:  in.ArticleID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
		CreatedAt:  now(),
	}
	if in.CreatedAt != nil {
		comment.CreatedAt = in.CreatedAt.UTC().Truncate(timePrecision)
	}

	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		if _, err := tx.Articles().FindByID(ctx, in.ArticleID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError(domain.FieldError{
					Field:   "article_id",
					Message: "article_id does not reference an existing article",
				})
			}
			return err
		}
		return tx.Comments().Create(ctx, comment)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			s.logger.Error().Err(err).Msg("failed to create comment")
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Info().Str("comment_id", comment.ID).Str("article_id", comment.ArticleID).Msg("comment created")
	return comment, nil
}

func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		comments, err = tx.Comments().List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	var comment *domain.Comment
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		comment, err = tx.Comments().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if err := s.uow.Do(ctx, func(tx ports.Tx) error {
		return tx.Comments().Delete(ctx, id)
	}); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.logger.Info().Str("comment_id", id).Msg("comment deleted")
	return nil
}
