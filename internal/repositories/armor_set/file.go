package armorset

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/pkg/jsonfile"
)

type fileRepository struct {
	path string
}

// FileConfig contains configuration for the file armor set repository.
type FileConfig struct {
	Path string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// NewFile creates a repository storing the collection as a JSON array
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

func (r *fileRepository) LoadAll(ctx context.Context, _ LoadAllInput) (*LoadAllOutput, error) {
	var records []*armor.SetRecord
	if err := jsonfile.Read(r.path, &records); err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			slog.DebugContext(ctx, "No armor sets saved yet", "path", r.path)
			return &LoadAllOutput{Sets: []*armor.Set{}}, nil
		}
		var pathErr *os.PathError
		if stderrors.As(err, &pathErr) {
			return nil, errors.Wrapf(err, "failed to read armor sets from %s", r.path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "armor set file %s is corrupt", r.path).
			WithReason(armor.ReasonInvalidSetRecord)
	}

	sets, err := deserializeAll(records)
	if err != nil {
		return nil, err
	}

	return &LoadAllOutput{Sets: sets}, nil
}

func (r *fileRepository) SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error) {
	records, err := serializeAll(input.Sets)
	if err != nil {
		return nil, err
	}

	if err := jsonfile.Write(r.path, records); err != nil {
		return nil, errors.Wrapf(err, "failed to write armor sets to %s", r.path)
	}

	slog.DebugContext(ctx, "Saved armor sets",
		"path", r.path,
		"count", len(records))

	return &SaveAllOutput{Saved: len(records)}, nil
}
