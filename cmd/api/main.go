// Command api serves the TalentBridge authentication and identity API.
//
// @title                       TalentBridge Platform API
// @version                     1.0
// @description                 Authentication and identity endpoints.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/talentbridge/platform-api/internal/api"
	"github.com/talentbridge/platform-api/internal/api/handler"
	"github.com/talentbridge/platform-api/internal/core/ports"
	"github.com/talentbridge/platform-api/internal/core/service"
	"github.com/talentbridge/platform-api/internal/infrastructure/db/mongo"
	"github.com/talentbridge/platform-api/internal/infrastructure/db/postgres"
	"github.com/talentbridge/platform-api/internal/infrastructure/db/redis"
	"github.com/talentbridge/platform-api/internal/infrastructure/password"
	"github.com/talentbridge/platform-api/internal/infrastructure/queue"
	"github.com/talentbridge/platform-api/internal/infrastructure/token"
	"github.com/talentbridge/platform-api/internal/pkg/config"
	"github.com/talentbridge/platform-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.OptionsFor(cfg.Env, cfg.LogLevel, "platform-api"))

	key, err := token.NewSigningKey(cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("signing key")
	}
	hasher, err := password.NewBcryptHasher(cfg.Password.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hasher")
	}

	readiness := map[string]handler.Pinger{}

	repo, closeStore, err := openStore(ctx, cfg, readiness)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("credential store")
	}
	defer closeStore()

	// --- Audit pipeline ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, logger.Component("audit"))
	dispatcher.AddSink("log", queue.NewLogSink(logger.Component("audit")))

	if cfg.Audit.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis")
		}
		defer rdb.Close()

		dispatcher.AddSink("redis_stream", redis.NewAuditStream(rdb, cfg.Audit.Stream, 0))
		readiness["redis"] = redisPinger(rdb)
	}

	auditCtx, stopAudit := context.WithCancel(context.Background())
	dispatcher.Start(auditCtx)

	// --- Core ---
	opts := []token.Option{token.WithTTL(cfg.JWT.TTL), token.WithLeeway(cfg.JWT.Leeway)}
	authService := service.NewAuthService(repo, hasher, token.NewIssuer(key, opts...), logger.Component("auth"))
	userService := service.NewUserService(repo, logger.Component("users"))

	e := api.NewRouter(api.Deps{
		Log:       log,
		Auth:      authService,
		Users:     userService,
		Verifier:  token.NewVerifier(key, opts...),
		Identity:  repo,
		Audit:     dispatcher,
		Readiness: readiness,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("backend", cfg.StoreBackend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Drain queued audit events before stopping the workers.
	drained := make(chan struct{})
	go func() {
		dispatcher.Close()
		close(drained)
	}()
	select {
	case <-drained:
	case <-shutdownCtx.Done():
		log.Warn().Msg("audit drain timed out")
	}
	stopAudit()
	dispatcher.Wait()
}

// openStore connects the configured credential store, prepares its schema
// and registers its readiness probe.
func openStore(ctx context.Context, cfg *config.Config, readiness map[string]handler.Pinger) (ports.AuthRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		readiness["postgres"] = sqlPinger(db)
		return postgres.NewAuthRepository(db), func() { _ = db.Close() }, nil

	default:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		repo := mongo.NewAuthRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		readiness["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil
	}
}

func sqlPinger(db *sql.DB) handler.Pinger {
	return db.PingContext
}

func redisPinger(rdb *goredis.Client) handler.Pinger {
	return func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
}
