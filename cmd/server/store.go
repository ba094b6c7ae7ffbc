package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/redis"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
)

// openStore connects the configured game state backend. The returned
// func releases the connection.
func openStore(ctx context.Context, cfg *config.Server) (gamestate.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:        10,
			MinIdleConns:    2,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      3,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}
		if err := redis.Ping(ctx, client); err != nil {
			closeFn()
			return nil, nil, err
		}

		repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client})
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		slog.Info("Connected to redis", "addr", cfg.RedisAddr)
		return repo, closeFn, nil

	case config.StoreSQLite, config.StorePostgres:
		dialect := gamestate.Dialect(cfg.Store)
		db, err := gamestate.OpenSQL(ctx, dialect, cfg.SQLDSN)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		}

		repo, err := gamestate.NewSQL(ctx, &gamestate.SQLConfig{DB: db, Dialect: dialect})
		if err != nil {
			closeFn()
			return nil, nil, err
		}
		slog.Info("Connected to database", "dialect", dialect)
		return repo, closeFn, nil

	case config.StoreMemory:
		slog.Warn("Using in-memory store; game state is lost on shutdown")
		return gamestate.NewInMemory(nil), func() {}, nil

	default:
		return nil, nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}
