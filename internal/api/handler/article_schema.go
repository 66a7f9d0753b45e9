package handler

import (
	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

type authorRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email,max=50"`
}

type createArticleRequest struct {
	Title   string         `json:"title"   validate:"required,min=1,max=200"`
	Content string         `json:"content" validate:"required,min=1,max=10000"`
	Author  *authorRequest `json:"author"  validate:"required"`
}

func (r createArticleRequest) toInput() ports.CreateArticleInput {
	return ports.CreateArticleInput{
		Title:   r.Title,
		Content: r.Content,
		Author: domain.Author{
			Name:  r.Author.Name,
			Email: r.Author.Email,
		},
	}
}
