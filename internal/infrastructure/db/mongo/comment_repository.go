package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infohub/infohub-api/internal/core/domain"
)

type CommentRepository struct {
	binder
	col *mongo.Collection
}

type commentDoc struct {
	domain.Comment `bson:",inline"`
	Seq            int64 `bson:"seq"`
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx = r.bind(ctx)
	seq, err := r.nextSeq(ctx, collComments)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, commentDoc{Comment: *c, Seq: seq}); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	ctx = r.bind(ctx)
	cur, err := r.col.Find(ctx, bson.M{}, bySeq)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return decodeAll(ctx, cur, func(d commentDoc) domain.Comment {
		d.CreatedAt = d.CreatedAt.UTC()
		return d.Comment
	})
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var d commentDoc
	if err := r.col.FindOne(r.bind(ctx), bson.M{"_id": id}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, domain.NotFound("comment")
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d.Comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(r.bind(ctx), r.col, id, "comment")
}

func (r *CommentRepository) DeleteByArticle(ctx context.Context, articleID string) error {
	if _, err := r.col.DeleteMany(r.bind(ctx), bson.M{"article_id": articleID}); err != nil {
		return fmt.Errorf("delete comments of article: %w", err)
	}
	return nil
}
