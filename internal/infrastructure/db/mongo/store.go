package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
)

var _ ports.UnitOfWork = (*Store)(nil)

// Store implements ports.UnitOfWork on a MongoDB database. Every unit of
// work runs inside a multi-document transaction, so the client must come
// from Connect, which refuses standalone servers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{client: client, db: db}
}

func (s *Store) Do(ctx context.Context, fn func(tx ports.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(newTx(s.db, session))
	})
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the indexes the repositories rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	caseInsensitive := &options.Collation{Locale: "en", Strength: 2}
	plan := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetCollation(caseInsensitive)},
		},
		collContacts: {
			{Keys: bson.D{{Key: "seq", Value: 1}}},
		},
		collArticles: {
			{Keys: bson.D{{Key: "seq", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
		collComments: {
			{Keys: bson.D{{Key: "seq", Value: 1}}},
			{Keys: bson.D{{Key: "article_id", Value: 1}}},
		},
	}
	for coll, indexes := range plan {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

type tx struct {
	users    *UserRepository
	contacts *ContactRepository
	articles *ArticleRepository
	comments *CommentRepository
}

func newTx(db *mongo.Database, session mongo.Session) *tx {
	b := binder{db: db, session: session}
	return &tx{
		users:    &UserRepository{binder: b, col: db.Collection(collUsers)},
		contacts: &ContactRepository{binder: b, col: db.Collection(collContacts)},
		articles: &ArticleRepository{binder: b, col: db.Collection(collArticles)},
		comments: &CommentRepository{binder: b, col: db.Collection(collComments)},
	}
}

func (t *tx) Users() ports.UserRepository       { return t.users }
func (t *tx) Contacts() ports.ContactRepository { return t.contacts }
func (t *tx) Articles() ports.ArticleRepository { return t.articles }
func (t *tx) Comments() ports.CommentRepository { return t.comments }

// binder attaches the unit's session, if any, to each operation context.
type binder struct {
	db      *mongo.Database
	session mongo.Session
}

func (b binder) bind(ctx context.Context) context.Context {
	if b.session == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, b.session)
}

// nextSeq hands out monotonically increasing insertion numbers per collection.
func (b binder) nextSeq(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := b.db.Collection(collCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s seq: %w", name, err)
	}
	return counter.Value, nil
}

var bySeq = options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

func deleteOne(ctx context.Context, col *mongo.Collection, id, resource string) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", resource, err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound(resource)
	}
	return nil
}

// decodeAll drains cur into a non-nil slice.
func decodeAll[D any, T any](ctx context.Context, cur *mongo.Cursor, conv func(D) T) ([]T, error) {
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, conv(d))
	}
	return out, cur.Err()
}
