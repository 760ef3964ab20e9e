package catalog

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"

	"github.com/KirkDiggler/armor-builder/internal/clients/mhw"
	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/pkg/clock"
	"github.com/KirkDiggler/armor-builder/internal/pkg/jsonfile"
)

// Config holds the configuration for the file backed catalog cache
type Config struct {
	Path   string
	Source string
	Client mhw.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("path", c.Path, vb)
	if c.Client == nil {
		vb.RequiredField("client")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

type fileRepository struct {
	path   string
	source string
	client mhw.Client
	clock  clock.Clock
}

// NewFile creates a catalog repository caching to a JSON file
func NewFile(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog repository config")
	}

	return &fileRepository{
		path:   cfg.Path,
		source: cfg.Source,
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func (r *fileRepository) Sync(ctx context.Context, input SyncInput) (*SyncOutput, error) {
	exists, err := jsonfile.Exists(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat catalog cache %s", r.path)
	}
	if exists && !input.Force {
		slog.InfoContext(ctx, "Armor catalog already cached, not syncing", "path", r.path)
		return &SyncOutput{Skipped: true, Path: r.path}, nil
	}

	catalog, err := r.client.FetchCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch armor catalog")
	}

	doc := document{
		SyncedAt: r.clock.Now(),
		Source:   r.source,
		Ranks:    catalog,
	}
	if err := jsonfile.Write(r.path, doc); err != nil {
		return nil, errors.Wrapf(err, "failed to write catalog cache %s", r.path)
	}

	pieces := countPieces(catalog)
	slog.InfoContext(ctx, "Saved armor catalog",
		"path", r.path,
		"pieces", pieces)

	return &SyncOutput{
		Path:     r.path,
		SyncedAt: doc.SyncedAt,
		Pieces:   pieces,
	}, nil
}

func (r *fileRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	var doc document
	if err := jsonfile.Read(r.path, &doc); err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFoundf("no armor catalog cached at %s", r.path).
				WithMeta("path", r.path)
		}
		var pathErr *os.PathError
		if stderrors.As(err, &pathErr) {
			return nil, errors.Wrapf(err, "failed to read catalog cache %s", r.path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "catalog cache %s is corrupt", r.path)
	}

	catalog := doc.Ranks
	if catalog == nil {
		catalog = armor.NewCatalog()
	}

	slog.DebugContext(ctx, "Loaded armor catalog",
		"path", r.path,
		"synced_at", doc.SyncedAt,
		"pieces", countPieces(catalog))

	return &LoadOutput{
		Catalog:  catalog,
		Source:   doc.Source,
		SyncedAt: doc.SyncedAt,
	}, nil
}
