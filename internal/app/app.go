// Package app is the composition root: it opens the configured stores, builds
// the services and serves the HTTP API until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/infohub/infohub-api/internal/api"
	"github.com/infohub/infohub-api/internal/core/ports"
	"github.com/infohub/infohub-api/internal/core/service"
	"github.com/infohub/infohub-api/internal/infrastructure/config"
	"github.com/infohub/infohub-api/internal/infrastructure/db/memory"
	mongostore "github.com/infohub/infohub-api/internal/infrastructure/db/mongo"
	"github.com/infohub/infohub-api/internal/infrastructure/db/postgres"
	redisstore "github.com/infohub/infohub-api/internal/infrastructure/db/redis"
)

// App owns every long-lived dependency of the process.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	store     ports.UnitOfWork
	revoker   ports.TokenRevoker
	readiness map[string]ports.Pinger
	closers   []func(context.Context) error

	Auth     *service.AuthService
	Contacts *service.ContactService
	Articles *service.ArticleService
	Comments *service.CommentService
}

// New connects to the configured store and revocation list and wires the
// services on top of them. Call Close to release the connections.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{
		cfg:       cfg,
		log:       log,
		readiness: make(map[string]ports.Pinger),
	}

	if err := a.openStore(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	if err := a.openRevoker(ctx); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.Auth = service.NewAuthService(a.store, a.revoker, service.AuthOptions{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		TokenTTL: cfg.JWT.TTL,
	}, log)
	a.Contacts = service.NewContactService(a.store, log)
	a.Articles = service.NewArticleService(a.store, log)
	a.Comments = service.NewCommentService(a.store, log)
	return a, nil
}

// Migrate brings the configured store's schema up to date and exits.
func Migrate(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	c := *cfg
	c.Postgres.Migrate = true

	a := &App{cfg: &c, log: log, readiness: make(map[string]ports.Pinger)}
	err := a.openStore(ctx)
	return errors.Join(err, a.Close(ctx))
}

func (a *App) openStore(ctx context.Context) error {
	switch a.cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{
			DSN:          a.cfg.Postgres.DSN,
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
		})
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })

		if a.cfg.Postgres.Migrate {
			if err := postgres.Migrate(db); err != nil {
				return err
			}
			a.log.Info().Msg("postgres migrations applied")
		}
		store := postgres.NewStore(db)
		a.store, a.readiness["postgres"] = store, store

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:         a.cfg.Mongo.URI,
			Database:    a.cfg.Mongo.Database,
			MaxPoolSize: a.cfg.Mongo.MaxPoolSize,
		})
		if err != nil {
			return err
		}
		a.closers = append(a.closers, client.Disconnect)

		store := mongostore.NewStore(client, db)
		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		a.store, a.readiness["mongo"] = store, store

	case config.DriverMemory:
		store := memory.NewStore()
		a.store, a.readiness["memory"] = store, store
		a.log.Warn().Msg("using in-memory store, data is lost on exit")

	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.StoreDriver)
	}

	a.log.Info().Str("driver", a.cfg.StoreDriver).Msg("store ready")
	return nil
}

func (a *App) openRevoker(ctx context.Context) error {
	if a.cfg.Redis.Addr == "" {
		a.revoker = memory.NewRevoker()
		return nil
	}

	client, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		PoolSize: a.cfg.Redis.PoolSize,
	})
	if err != nil {
		return err
	}
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })

	revoker := redisstore.NewRevoker(client)
	a.revoker, a.readiness["redis"] = revoker, revoker
	return nil
}

// Router builds the HTTP handler for the wired services.
func (a *App) Router() *echo.Echo {
	return api.NewRouter(api.Deps{
		Auth:           a.Auth,
		Contacts:       a.Contacts,
		Articles:       a.Articles,
		Comments:       a.Comments,
		Readiness:      a.readiness,
		RequiredHeader: a.cfg.RequiredHeader,
		Logger:         a.log,
	})
}

// Serve listens on the configured port and shuts the server down gracefully
// once ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+a.cfg.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return a.serve(ctx, ln, a.Router())
}

func (a *App) serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info().Str("addr", ln.Addr().String()).Msg("server started")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info().Msg("server gracefully stopped")
	return nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}
