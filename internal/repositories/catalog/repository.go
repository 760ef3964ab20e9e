// Package catalog provides the local cache of the remote armor catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/armor-builder/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
)

// Repository defines the interface for the armor catalog cache
type Repository interface {
	// Sync downloads the catalog into the cache.
	// When a cache already exists and Force is false nothing is fetched and Skipped is set.
	// Returns errors.Unavailable when the remote source cannot be reached
	// Returns errors.Internal for storage failures
	Sync(ctx context.Context, input SyncInput) (*SyncOutput, error)

	// Load reads the cached catalog
	// Returns errors.NotFound if no cache exists
	// Returns errors.DataLoss if the cache cannot be decoded
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SyncInput defines the input for syncing the catalog
type SyncInput struct {
	Force bool
}

// SyncOutput defines the output for syncing the catalog
type SyncOutput struct {
	Skipped  bool
	Path     string
	SyncedAt time.Time
	Pieces   int
}

// LoadInput defines the input for loading the catalog
type LoadInput struct{}

// LoadOutput defines the output for loading the catalog
type LoadOutput struct {
	Catalog  armor.Catalog
	Source   string
	SyncedAt time.Time
}

// document is the cache file layout
type document struct {
	SyncedAt time.Time     `json:"synced_at"`
	Source   string        `json:"source"`
	Ranks    armor.Catalog `json:"ranks"`
}

func countPieces(c armor.Catalog) int {
	n := 0
	for _, byName := range c {
		for _, byType := range byName {
			n += len(byType)
		}
	}
	return n
}
