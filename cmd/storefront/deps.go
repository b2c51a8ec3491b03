package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/auth"
	"github.com/nikolayk812/storefront-cart/internal/cart"
	"github.com/nikolayk812/storefront-cart/internal/config"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/order"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/repository"
	reporedis "github.com/nikolayk812/storefront-cart/internal/repository/redis"
	"github.com/nikolayk812/storefront-cart/internal/repository/sqlite"
	"github.com/nikolayk812/storefront-cart/internal/snapshot"
	"github.com/nikolayk812/storefront-cart/internal/upload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Resolved lazily, tests assign them directly.
var (
	snapshots port.SnapshotStore
	catalog   port.CatalogRepository
	uploader  port.ImageUploader
	opener    order.Opener

	pool    *pgxpool.Pool
	closers []func() error
)

func closeDeps() {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i]())
	}
	closers = nil

	if err := errors.Join(errs...); err != nil && logger != nil {
		logger.Warn("close dependencies", zap.Error(err))
	}
}

func postgresPool(ctx context.Context) (*pgxpool.Pool, error) {
	if pool != nil {
		return pool, nil
	}

	p, err := pgxpool.New(ctx, cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	pool = p
	closers = append(closers, func() error {
		p.Close()
		pool = nil
		return nil
	})

	return pool, nil
}

func snapshotStore(ctx context.Context) (port.SnapshotStore, error) {
	if snapshots != nil {
		return snapshots, nil
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		snapshots = snapshot.NewMemory()
	case config.BackendSQLite:
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite.Open: %w", err)
		}
		closers = append(closers, s.Close)
		snapshots = s
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.Join(fmt.Errorf("client.Ping: %w", err), client.Close())
		}
		closers = append(closers, client.Close)
		snapshots = reporedis.NewSnapshotStore(client)
	case config.BackendPostgres:
		p, err := postgresPool(ctx)
		if err != nil {
			return nil, err
		}
		repo, err := repository.NewCart(p)
		if err != nil {
			return nil, fmt.Errorf("repository.NewCart: %w", err)
		}
		snapshots = repo
	default:
		return nil, fmt.Errorf("unknown store backend[%s]", cfg.Store.Backend)
	}

	logger.Debug("snapshot store ready", zap.String("backend", cfg.Store.Backend))

	return snapshots, nil
}

func catalogRepository(ctx context.Context) (port.CatalogRepository, error) {
	if catalog != nil {
		return catalog, nil
	}

	p, err := postgresPool(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err = repository.NewCatalog(p)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCatalog: %w", err)
	}

	return catalog, nil
}

func imageUploader() (port.ImageUploader, error) {
	if uploader != nil {
		return uploader, nil
	}

	u, err := upload.NewCloudinary(cfg.Cloudinary.URL, cfg.Cloudinary.Folder, logger)
	if err != nil {
		return nil, fmt.Errorf("upload.NewCloudinary: %w", err)
	}
	uploader = u

	return uploader, nil
}

func openCart(ctx context.Context) (*cart.Store, error) {
	s, err := snapshotStore(ctx)
	if err != nil {
		return nil, err
	}

	store, err := cart.Open(ctx, s,
		cart.WithName(cart.SnapshotName(cfg.Store.OwnerID)),
		cart.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("cart.Open: %w", err)
	}

	store.Subscribe(func(items []domain.CartItem) {
		c := domain.Cart{Items: items}
		logger.Debug("cart changed",
			zap.Int("total_items", c.TotalItems()),
			zap.String("total_price", c.TotalPrice().String()))
	})

	return store, nil
}

// dispatcher opens links with the system browser unless printOnly is set,
// in which case the link is only returned to be shown.
func dispatcher(printOnly bool) *order.Dispatcher {
	o := opener
	if printOnly {
		o = order.OpenerFunc(func(string) error { return nil })
	}
	return order.NewDispatcher(o, logger)
}

func verifier(ctx context.Context) (*auth.Verifier, error) {
	roles, err := catalogRepository(ctx)
	if err != nil {
		return nil, err
	}

	v, err := auth.NewVerifier(cfg.Auth.JWTSecret, roles)
	if err != nil {
		return nil, fmt.Errorf("auth.NewVerifier: %w", err)
	}

	return v, nil
}
