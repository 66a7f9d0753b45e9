package handler

import (
	"github.com/infohub/infohub-api/internal/core/ports"
)

type createCommentRequest struct {
	ArticleID  string     `json:"article_id"  validate:"required,min=1,max=100"`
	AuthorName string     `json:"author_name" validate:"required,min=2,max=50"`
	Content    string     `json:"content"     validate:"required,min=1,max=2000"`
	CreatedAt  *timestamp `json:"created_at"  swaggertype:"string" format:"date-time"`
}

func (r createCommentRequest) toInput() ports.CreateCommentInput {
	in := ports.CreateCommentInput{
		ArticleID:  r.ArticleID,
		AuthorName: r.AuthorName,
		Content:    r.Content,
	}
	if r.CreatedAt != nil {
		t := r.CreatedAt.Time
		in.CreatedAt = &t
	}
	return in
}
