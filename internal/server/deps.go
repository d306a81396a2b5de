package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"anoa.com/askify/internal/bootstrap"
	"anoa.com/askify/internal/config"
	"anoa.com/askify/pkg/database"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Dependencies are the external resources the server is built on. Every
// field except Store may be nil; the server then falls back to the
// in-memory collections and disables the features that need it.
type Dependencies struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Store  kvstore.Store
	Meili  meilisearch.ServiceManager
	Images storage.ImageStorage
}

// Close releases every resource held by d.
func (d *Dependencies) Close() error {
	var errs []error
	if d.Store != nil {
		errs = append(errs, d.Store.Close())
	}
	if d.Redis != nil {
		errs = append(errs, d.Redis.Close())
	}
	errs = append(errs, database.Close(d.DB))
	return errors.Join(errs...)
}

// Connect opens the resources enabled in cfg.
func Connect(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		deps.Redis = redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = deps.Redis.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Log.Info("✅ Connected to Redis")
	}

	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, !cfg.IsProduction())
		if err != nil {
			_ = deps.Close()
			return nil, err
		}
		deps.DB = db

		if err := bootstrap.Migrate(db); err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		if err := bootstrap.SeedMockData(db); err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("seed failed: %w", err)
		}
		logger.Log.Info("✅ Connected to Postgres")
	}

	store, err := kvstore.Open(cfg.StoreDriver, cfg.SQLitePath, deps.Redis)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}
	deps.Store = store

	if cfg.MeiliSearchHost != "" {
		deps.Meili = meilisearch.New(meiliURL(cfg.MeiliSearchHost), meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}

	if cfg.CloudinaryURL != "" {
		images, err := storage.NewCloudinaryStorage(cfg.CloudinaryURL)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to initialize cloudinary storage: %w", err)
		}
		deps.Images = images
	}

	return deps, nil
}

func meiliURL(host string) string {
	if strings.HasPrefix(host, "http") {
		return host
	}
	if strings.Contains(host, ":") {
		return "http://" + host
	}
	return "http://" + host + ":7700"
}
