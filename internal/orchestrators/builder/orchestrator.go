// Package builder implements the armor set orchestrator: catalog sync,
// set creation and editing, and read access to sets and catalog pieces
package builder

//go:generate mockgen -destination=mock/mock_service.go -package=buildermock github.com/KirkDiggler/armor-builder/internal/orchestrators/builder Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
	"github.com/KirkDiggler/armor-builder/internal/repositories/catalog"
)

// Service defines the interface for armor set operations
type Service interface {
	// Catalog
	SyncCatalog(ctx context.Context, input *SyncCatalogInput) (*SyncCatalogOutput, error)
	GetPiece(ctx context.Context, input *GetPieceInput) (*GetPieceOutput, error)
	ListPieces(ctx context.Context, input *ListPiecesInput) (*ListPiecesOutput, error)
	ListPieceNames(ctx context.Context, input *ListPieceNamesInput) (*ListPieceNamesOutput, error)

	// Sets
	CreateSet(ctx context.Context, input *CreateSetInput) (*CreateSetOutput, error)
	EditSet(ctx context.Context, input *EditSetInput) (*EditSetOutput, error)
	DeleteSet(ctx context.Context, input *DeleteSetInput) (*DeleteSetOutput, error)
	GetSet(ctx context.Context, input *GetSetInput) (*GetSetOutput, error)
	ListSets(ctx context.Context, input *ListSetsInput) (*ListSetsOutput, error)
}

// Config holds the dependencies for the armor set orchestrator
type Config struct {
	CatalogRepo catalog.Repository
	SetRepo     armorset.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.SetRepo == nil {
		vb.RequiredField("SetRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalog.Repository
	setRepo     armorset.Repository

	catalogMu sync.Mutex
	catalog   armor.Catalog

	// setsMu serializes load-modify-save cycles on the set collection
	setsMu sync.Mutex
}

// NewOrchestrator creates a new armor set orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		setRepo:     cfg.SetRepo,
	}, nil
}

// SyncCatalog refreshes the cached catalog from the remote source
func (o *orchestrator) SyncCatalog(ctx context.Context, input *SyncCatalogInput) (*SyncCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.catalogRepo.Sync(ctx, catalog.SyncInput{Force: input.Force})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sync armor catalog")
	}

	if !out.Skipped {
		o.catalogMu.Lock()
		o.catalog = nil
		o.catalogMu.Unlock()
	}

	return &SyncCatalogOutput{
		Skipped:  out.Skipped,
		Path:     out.Path,
		Pieces:   out.Pieces,
		SyncedAt: out.SyncedAt,
	}, nil
}

// loadCatalog returns the catalog, reading it once and syncing first when nothing is cached
func (o *orchestrator) loadCatalog(ctx context.Context) (armor.Catalog, error) {
	o.catalogMu.Lock()
	defer o.catalogMu.Unlock()

	if o.catalog != nil {
		return o.catalog, nil
	}

	out, err := o.catalogRepo.Load(ctx, catalog.LoadInput{})
	if errors.IsNotFound(err) {
		slog.InfoContext(ctx, "No armor catalog cached, syncing")
		if _, err := o.catalogRepo.Sync(ctx, catalog.SyncInput{}); err != nil {
			return nil, errors.Wrap(err, "failed to sync armor catalog")
		}
		out, err = o.catalogRepo.Load(ctx, catalog.LoadInput{})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load armor catalog")
	}

	o.catalog = out.Catalog
	return o.catalog, nil
}

// GetPiece looks up one piece in the catalog
func (o *orchestrator) GetPiece(ctx context.Context, input *GetPieceInput) (*GetPieceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLookup(input.Rank, input.Name); err != nil {
		return nil, err
	}
	if _, err := armor.ParsePieceType(input.Type.String()); err != nil {
		return nil, err
	}

	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	piece, err := c.Lookup(input.Type, input.Rank, input.Name)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, pieceNotFound(input.Type, input.Rank, input.Name)
	}

	return &GetPieceOutput{Piece: piece}, nil
}

// ListPieces returns every catalog piece of one armor set in slot order
func (o *orchestrator) ListPieces(ctx context.Context, input *ListPiecesInput) (*ListPiecesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateLookup(input.Rank, input.Name); err != nil {
		return nil, err
	}

	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	types, err := c.PieceTypes(input.Rank, input.Name)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, errors.NotFoundf("no %s rank armor named %q", input.Rank, input.Name).
			WithMeta("rank", input.Rank.String()).
			WithMeta("name", input.Name)
	}

	pieces := make([]*armor.Piece, 0, len(types))
	for _, t := range types {
		piece, err := c.Lookup(t, input.Rank, input.Name)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, piece)
	}

	return &ListPiecesOutput{Pieces: pieces}, nil
}

// ListPieceNames returns the armor set names available at a rank
func (o *orchestrator) ListPieceNames(ctx context.Context, input *ListPieceNamesInput) (*ListPieceNamesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := armor.ParseRank(input.Rank.String()); err != nil {
		return nil, err
	}

	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	names, err := c.Names(input.Rank)
	if err != nil {
		return nil, err
	}

	return &ListPieceNamesOutput{Names: names}, nil
}

// CreateSet builds a set from catalog pieces and appends it to the collection
func (o *orchestrator) CreateSet(ctx context.Context, input *CreateSetInput) (*CreateSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("set name is required")
	}
	if _, err := armor.ParseRank(input.Rank.String()); err != nil {
		return nil, err
	}
	for t := range input.Pieces {
		if err := armor.ValidateSlot(t); err != nil {
			return nil, err
		}
	}

	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	set := armor.NewSet(name)
	var missing []armor.SlotName
	for _, t := range armor.SlotTypes() {
		pieceName := strings.TrimSpace(input.Pieces[t])
		if pieceName == "" {
			continue
		}

		piece, err := c.Lookup(t, input.Rank, pieceName)
		if err != nil {
			return nil, err
		}
		if piece == nil {
			slog.WarnContext(ctx, "Armor piece not in catalog, leaving slot empty",
				"set", name,
				"slot", t.String(),
				"rank", input.Rank.String(),
				"piece", pieceName)
			missing = append(missing, armor.SlotName{Type: t, Name: pieceName})
			continue
		}
		if err := set.ReplacePiece(t, piece); err != nil {
			return nil, err
		}
	}

	o.setsMu.Lock()
	defer o.setsMu.Unlock()

	sets, err := o.loadSets(ctx)
	if err != nil {
		return nil, err
	}
	if indexOf(sets, name) >= 0 {
		return nil, errors.AlreadyExistsf("armor set %q already exists", name).
			WithMeta("name", name)
	}

	if err := o.saveSets(ctx, append(sets, set)); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Created armor set",
		"set", name,
		"rank", input.Rank.String(),
		"missing", len(missing))

	return &CreateSetOutput{Set: set, Missing: missing}, nil
}

// EditSet swaps one piece of a stored set for another catalog piece
func (o *orchestrator) EditSet(ctx context.Context, input *EditSetInput) (*EditSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("set name is required")
	}
	if err := validateLookup(input.Rank, input.PieceName); err != nil {
		return nil, err
	}
	if err := armor.ValidateSlot(input.Type); err != nil {
		return nil, err
	}

	c, err := o.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	piece, err := c.Lookup(input.Type, input.Rank, input.PieceName)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, pieceNotFound(input.Type, input.Rank, input.PieceName)
	}

	o.setsMu.Lock()
	defer o.setsMu.Unlock()

	sets, err := o.loadSets(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(sets, input.Name)
	if i < 0 {
		return nil, setNotFound(input.Name)
	}

	set := sets[i]
	previous := set.Piece(input.Type)
	if err := set.ReplacePiece(input.Type, piece); err != nil {
		return nil, err
	}

	if err := o.saveSets(ctx, sets); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Edited armor set",
		"set", set.Name,
		"slot", input.Type.String(),
		"piece", piece.Name())

	return &EditSetOutput{Set: set, Previous: previous}, nil
}

// DeleteSet removes a set from the collection
func (o *orchestrator) DeleteSet(ctx context.Context, input *DeleteSetInput) (*DeleteSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("set name is required")
	}

	o.setsMu.Lock()
	defer o.setsMu.Unlock()

	sets, err := o.loadSets(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(sets, input.Name)
	if i < 0 {
		return nil, setNotFound(input.Name)
	}

	remaining := append(sets[:i:i], sets[i+1:]...)
	if err := o.saveSets(ctx, remaining); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Deleted armor set", "set", input.Name)

	return &DeleteSetOutput{Remaining: len(remaining)}, nil
}

// GetSet returns one stored set
func (o *orchestrator) GetSet(ctx context.Context, input *GetSetInput) (*GetSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("set name is required")
	}

	sets, err := o.loadSets(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(sets, input.Name)
	if i < 0 {
		return nil, setNotFound(input.Name)
	}

	return &GetSetOutput{Set: sets[i]}, nil
}

// ListSets returns stored sets in saved order, or the named ones in the requested order
func (o *orchestrator) ListSets(ctx context.Context, input *ListSetsInput) (*ListSetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sets, err := o.loadSets(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.Names) == 0 {
		return &ListSetsOutput{Sets: sets}, nil
	}

	selected := make([]*armor.Set, 0, len(input.Names))
	for _, name := range input.Names {
		i := indexOf(sets, name)
		if i < 0 {
			return nil, setNotFound(name)
		}
		selected = append(selected, sets[i])
	}

	return &ListSetsOutput{Sets: selected}, nil
}

func (o *orchestrator) loadSets(ctx context.Context) ([]*armor.Set, error) {
	out, err := o.setRepo.LoadAll(ctx, armorset.LoadAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load armor sets")
	}
	return out.Sets, nil
}

func (o *orchestrator) saveSets(ctx context.Context, sets []*armor.Set) error {
	if _, err := o.setRepo.SaveAll(ctx, armorset.SaveAllInput{Sets: sets}); err != nil {
		return errors.Wrap(err, "failed to save armor sets")
	}
	return nil
}

func indexOf(sets []*armor.Set, name string) int {
	for i, s := range sets {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func validateLookup(rank armor.Rank, name string) error {
	if _, err := armor.ParseRank(rank.String()); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("armor name is required")
	}
	return nil
}

func setNotFound(name string) error {
	return errors.NotFoundf("armor set %q not found", name).
		WithMeta("name", name)
}

func pieceNotFound(pieceType armor.PieceType, rank armor.Rank, name string) error {
	return errors.NotFoundf("no %s rank %s piece named %q", rank, pieceType, name).
		WithMeta("rank", rank.String()).
		WithMeta("type", pieceType.String()).
		WithMeta("name", name)
}
