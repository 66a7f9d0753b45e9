package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxPoolSize = 100
	appName            = "infohub"
)

const (
	collUsers    = "users"
	collContacts = "contacts"
	collArticles = "articles"
	collComments = "comments"
	collCounters = "counters"
)

// ErrNoTransactions is returned by Connect when the server is a standalone
// mongod, which cannot run multi-document transactions.
var ErrNoTransactions = errors.New("mongo: deployment does not support transactions, use a replica set or sharded cluster")

// Config captures the settings for the infohub document store.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

// helloReply holds the topology fields of the hello command.
type helloReply struct {
	SetName string `bson:"setName"`
	Msg     string `bson:"msg"`
}

// supportsTransactions reports whether the replying server is a replica set
// member or a mongos router.
func (h helloReply) supportsTransactions() bool {
	return h.SetName != "" || h.Msg == "isdbgrid"
}

// Connect opens a client, pings it and checks the topology can run the
// transactions every unit of work needs.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	poolSize := cfg.MaxPoolSize
	if poolSize == 0 {
		poolSize = defaultMaxPoolSize
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetMaxPoolSize(poolSize).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	fail := func(err error) (*mongo.Client, *mongo.Database, error) {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, nil, err
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return fail(fmt.Errorf("mongo ping: %w", err))
	}

	var hello helloReply
	if err := client.Database("admin").RunCommand(connectCtx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return fail(fmt.Errorf("mongo hello: %w", err))
	}
	if !hello.supportsTransactions() {
		return fail(ErrNoTransactions)
	}

	return client, client.Database(cfg.Database), nil
}
