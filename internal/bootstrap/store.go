package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/ishanperera/portfolio-backend/config"
	"github.com/ishanperera/portfolio-backend/internal/projects/store"
)

// OpenStore builds the project store named by the config and seeds it
// when empty. The returned func releases the underlying connection, if
// any.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (store.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		s := store.NewMemory()
		if err := s.Seed(ctx, store.SeedProjects()); err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case "redis":
		client, err := openRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewRedis(client)
		if err := s.Seed(ctx, store.SeedProjects()); err != nil {
			client.Close()
			return nil, nil, err
		}
		return s, func() { client.Close() }, nil

	case "postgres":
		db, err := openPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPostgres(db)
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := s.Seed(ctx, store.SeedProjects()); err != nil {
			db.Close()
			return nil, nil, err
		}
		return s, func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openRedis(ctx context.Context, cfg config.StoreConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// Fail fast
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
