package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/armor-builder/internal/clients/mhw"
	"github.com/KirkDiggler/armor-builder/internal/config"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/armor-builder/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/armor-builder/internal/redis"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
	"github.com/KirkDiggler/armor-builder/internal/repositories/catalog"
)

const userAgent = "armor-builder/1.0"

// newService wires the orchestrator from config. The returned func releases
// store connections and is safe to call when err is non-nil.
func newService(ctx context.Context, cfg config.Config) (builder.Service, func(), error) {
	noop := func() {}

	mhwClient, err := mhw.New(&mhw.Config{
		SourceURL:   cfg.Catalog.SourceURL,
		HTTPTimeout: cfg.Catalog.HTTPTimeout,
		UserAgent:   userAgent,
	})
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to create catalog client")
	}

	catalogRepo, err := catalog.NewFile(&catalog.Config{
		Path:   cfg.CatalogPath(),
		Source: cfg.Catalog.SourceURL,
		Client: mhwClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, noop, err
	}

	setRepo, closeStore, err := newSetRepository(ctx, cfg.Store, cfg.StorePath())
	if err != nil {
		return nil, noop, err
	}

	service, err := builder.NewOrchestrator(&builder.Config{
		CatalogRepo: catalogRepo,
		SetRepo:     setRepo,
	})
	if err != nil {
		closeStore()
		return nil, noop, err
	}

	return service, closeStore, nil
}

// newSetRepository opens the configured set store
func newSetRepository(ctx context.Context, store config.StoreConfig, filePath string) (armorset.Repository, func(), error) {
	noop := func() {}

	switch store.Backend {
	case config.BackendRedis:
		client, err := redisclient.Connect(store.RedisMode, store.RedisAddrs(), store.RedisMasterName,
			&redisclient.Options{UseTLS: store.RedisTLS})
		if err != nil {
			return nil, noop, err
		}
		repo, err := armorset.NewRedis(&armorset.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		slog.DebugContext(ctx, "Using redis set store", "mode", store.RedisMode, "addr", store.RedisAddr)
		return repo, func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		if err := armorset.RunMigrations(ctx, store.PostgresDSN); err != nil {
			return nil, noop, err
		}
		pool, err := armorset.Connect(ctx, store.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		repo, err := armorset.NewPostgres(&armorset.PostgresConfig{Pool: pool})
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		slog.DebugContext(ctx, "Using postgres set store")
		return repo, pool.Close, nil

	case config.BackendFile:
		repo, err := armorset.NewFile(&armorset.FileConfig{Path: filePath})
		if err != nil {
			return nil, noop, err
		}
		slog.DebugContext(ctx, "Using file set store", "path", filePath)
		return repo, noop, nil

	default:
		return nil, noop, errors.InvalidArgumentf("unknown store backend %q", store.Backend)
	}
}

// withService runs fn against a freshly wired service
func withService(ctx context.Context, fn func(builder.Service) error) error {
	service, closeFn, err := newService(ctx, cfg)
	defer closeFn()
	if err != nil {
		return err
	}
	return fn(service)
}
