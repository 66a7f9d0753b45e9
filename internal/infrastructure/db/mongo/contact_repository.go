package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infohub/infohub-api/internal/core/domain"
)

type ContactRepository struct {
	binder
	col *mongo.Collection
}

type contactDoc struct {
	domain.Contact `bson:",inline"`
	Seq            int64 `bson:"seq"`
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	ctx = r.bind(ctx)
	seq, err := r.nextSeq(ctx, collContacts)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, contactDoc{Contact: *c, Seq: seq}); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	ctx = r.bind(ctx)
	cur, err := r.col.Find(ctx, bson.M{}, bySeq)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return decodeAll(ctx, cur, func(d contactDoc) domain.Contact { return d.Contact })
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var d contactDoc
	if err := r.col.FindOne(r.bind(ctx), bson.M{"_id": id}).Decode(&d); err != nil {
		if isNoDocuments(err) {
			return nil, domain.NotFound("contact")
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return &d.Contact, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(r.bind(ctx), r.col, id, "contact")
}
