package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/welhome/properties-api/config"
	"github.com/welhome/properties-api/internal/properties/repository"
	"github.com/welhome/properties-api/internal/storage/postgres"
	"github.com/welhome/properties-api/internal/storage/sqlite"
)

// OpenStore connects the engine selected by DB_DRIVER and makes sure the
// properties table exists.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}

	log.Printf("[store] driver=%s ready", cfg.Database.Driver)
	return store, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPGX:
		pool, err := OpenDB(ctx, DBOptions{
			DSN:      postgres.DSN(&cfg.Database),
			MaxConns: int32(cfg.Database.MaxConns),
		})
		if err != nil {
			return nil, err
		}
		return repository.NewPGXRepository(pool), nil

	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLRepository(db, repository.PostgresDialect), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewSQLRepository(db, repository.SQLiteDialect), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return repository.NewRedisRepository(client), nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
}
