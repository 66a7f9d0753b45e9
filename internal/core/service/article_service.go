package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type ArticleService struct {
	uow    ports.UnitOfWork
	logger zerolog.Logger
}

func NewArticleService(uow ports.UnitOfWork, logger zerolog.Logger) *ArticleService {
	return &ArticleService{uow: uow, logger: logger}
}

// Create stores a new article stamped with the current time.
func (s *ArticleService) Create(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		ID:        newID(),
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		CreatedAt: now(),
	}

	if err := s.uow.Do(ctx, func(tx ports.Tx) error {
		return tx.Articles().Create(ctx, article)
	}); err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.logger.Info().Str("article_id", article.ID).Msg("article created")
	return article, nil
}

func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.collect(ctx, func(ctx context.Context, repo ports.ArticleRepository) ([]domain.Article, error) {
		return repo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	var article *domain.Article
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		article, err = tx.Articles().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// Delete removes the article together with its comments.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		if _, err := tx.Articles().FindByID(ctx, id); err != nil {
			return err
		}
		if err := tx.Comments().DeleteByArticle(ctx, id); err != nil {
			return err
		}
		return tx.Articles().Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// Search returns articles whose content contains keyword.
func (s *ArticleService) Search(ctx context.Context, keyword string) ([]domain.Article, error) {
	articles, err := s.collect(ctx, func(ctx context.Context, repo ports.ArticleRepository) ([]domain.Article, error) {
		return repo.SearchContent(ctx, keyword)
	})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, &domain.NotFoundError{Resource: "articles matching keyword"}
	}
	return articles, nil
}

// FilterByDate returns articles created strictly inside r.
func (s *ArticleService) FilterByDate(ctx context.Context, r domain.DateRange) ([]domain.Article, error) {
	articles, err := s.collect(ctx, func(ctx context.Context, repo ports.ArticleRepository) ([]domain.Article, error) {
		return repo.ListCreatedBetween(ctx, r)
	})
	if err != nil {
		return nil, fmt.Errorf("filter articles: %w", err)
	}
	if len(articles) == 0 {
		return nil, &domain.NotFoundError{Resource: "articles in date range"}
	}
	return articles, nil
}

func (s *ArticleService) collect(
	ctx context.Context,
	query func(context.Context, ports.ArticleRepository) ([]domain.Article, error),
) ([]domain.Article, error) {
	var articles []domain.Article
	err := s.uow.Do(ctx, func(tx ports.Tx) error {
		var err error
		articles, err = query(ctx, tx.Articles())
		return err
	})
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}
