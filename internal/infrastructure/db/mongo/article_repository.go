package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infohub/infohub-api/internal/core/domain"
)

type ArticleRepository struct {
	binder
	col *mongo.Collection
}

type articleDoc struct {
	domain.Article `bson:",inline"`
	Seq            int64 `bson:"seq"`
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	ctx = r.bind(ctx)
	seq, err := r.nextSeq(ctx, collArticles)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, articleDoc{Article: *a, Seq: seq}); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	return r.find(ctx, bson.M{})
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	var d articleDoc
	if err := r.col.FindOne(r.bind(ctx), bson.M{"_id": id}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, domain.NotFound("article")
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	d.CreatedAt = d.CreatedAt.UTC()
	return &d.Article, nil
}

func (r *ArticleRepository) SearchContent(ctx context.Context, keyword string) ([]domain.Article, error) {
	return r.find(ctx, contentFilter(keyword))
}

func (r *ArticleRepository) ListCreatedBetween(ctx context.Context, dr domain.DateRange) ([]domain.Article, error) {
	return r.find(ctx, createdBetweenFilter(dr))
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(r.bind(ctx), r.col, id, "article")
}

func (r *ArticleRepository) find(ctx context.Context, filter bson.M) ([]domain.Article, error) {
	ctx = r.bind(ctx)
	cur, err := r.col.Find(ctx, filter, bySeq)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	return decodeAll(ctx, cur, func(d articleDoc) domain.Article {
		d.CreatedAt = d.CreatedAt.UTC()
		return d.Article
	})
}

// contentFilter matches keyword as a literal, case-sensitive substring.
func contentFilter(keyword string) bson.M {
	return bson.M{"content": bson.M{"$regex": regexp.QuoteMeta(keyword)}}
}

func createdBetweenFilter(dr domain.DateRange) bson.M {
	return bson.M{"created_at": bson.M{"$gt": dr.Start, "$lt": dr.End}}
}
