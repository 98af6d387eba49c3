package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock"
	"github.com/KirkDiggler/forfeit/internal/common/uuid"
	"github.com/KirkDiggler/forfeit/internal/config"
	obligationRepo "github.com/KirkDiggler/forfeit/internal/repositories/obligation"
	penaltyRepo "github.com/KirkDiggler/forfeit/internal/repositories/penalty"
	userRepo "github.com/KirkDiggler/forfeit/internal/repositories/user"
	obligationService "github.com/KirkDiggler/forfeit/internal/services/obligation"
	penaltyService "github.com/KirkDiggler/forfeit/internal/services/penalty"
	"github.com/redis/go-redis/v9"
)

// App holds the wired services a command works with
type App struct {
	Config      *config.Config
	Clock       clock.Clock
	Logger      *slog.Logger
	Obligations obligationService.Service
	Penalties   penaltyService.Service

	closers []func() error
}

// AppFactory builds an App for a command invocation
type AppFactory func(ctx context.Context) (*App, error)

// Close releases the connections held by the App
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// DefaultAppFactory loads the configuration from the environment and wires
// the Redis and optional Postgres backends
func DefaultAppFactory(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	return NewApp(ctx, cfg, logger)
}

// NewApp wires repositories and services from a configuration
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		Config: cfg,
		Clock:  clock.New(),
		Logger: logger,
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	app.closers = append(app.closers, redisClient.Close)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	obligations, err := obligationRepo.NewRedis(&obligationRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create obligation repository: %w", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	penalties, err := app.newPenaltyRepository(ctx, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}

	uuidGenerator := uuid.New()

	app.Obligations, err = obligationService.New(&obligationService.Config{
		Location:       cfg.Location,
		Logger:         logger,
		ObligationRepo: obligations,
		PenaltyRepo:    penalties,
		UserRepo:       users,
		Clock:          app.Clock,
		UUIDGenerator:  uuidGenerator,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create obligation service: %w", err)
	}

	app.Penalties, err = penaltyService.New(&penaltyService.Config{
		Location:       cfg.Location,
		Logger:         logger,
		ObligationRepo: obligations,
		PenaltyRepo:    penalties,
		UserRepo:       users,
		Clock:          app.Clock,
		UUIDGenerator:  uuidGenerator,
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create penalty service: %w", err)
	}

	return app, nil
}

func (a *App) newPenaltyRepository(ctx context.Context, redisClient *redis.Client) (penaltyRepo.Repository, error) {
	if a.Config.PenaltyStore != config.PenaltyStorePostgres {
		repo, err := penaltyRepo.NewRedis(&penaltyRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create penalty repository: %w", err)
		}
		return repo, nil
	}

	db, err := sql.Open("postgres", a.Config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open Postgres: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	repo, err := penaltyRepo.NewPostgres(&penaltyRepo.PostgresConfig{
		DB: db,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create penalty repository: %w", err)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	a.Logger.InfoContext(ctx, "using Postgres penalty store")
	return repo, nil
}
