package builder

import (
	"time"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
)

// SyncCatalogInput defines the request for refreshing the armor catalog
type SyncCatalogInput struct {
	Force bool
}

// SyncCatalogOutput defines the response for refreshing the armor catalog
type SyncCatalogOutput struct {
	Skipped  bool
	Path     string
	Pieces   int
	SyncedAt time.Time
}

// CreateSetInput defines the request for creating a set from catalog pieces.
// Pieces maps a slot to the armor set name to take that slot's piece from;
// slots left out or given an empty name stay empty.
type CreateSetInput struct {
	Name   string
	Rank   armor.Rank
	Pieces map[armor.PieceType]string
}

// CreateSetOutput defines the response for creating a set
type CreateSetOutput struct {
	Set *armor.Set
	// Missing lists requested pieces the catalog does not have; their slots stay empty
	Missing []armor.SlotName
}

// EditSetInput defines the request for swapping one piece of a set
type EditSetInput struct {
	Name      string
	Rank      armor.Rank
	Type      armor.PieceType
	PieceName string
}

// EditSetOutput defines the response for swapping a piece
type EditSetOutput struct {
	Set      *armor.Set
	Previous *armor.Piece
}

// DeleteSetInput defines the request for deleting a set
type DeleteSetInput struct {
	Name string
}

// DeleteSetOutput defines the response for deleting a set
type DeleteSetOutput struct {
	Remaining int
}

// GetSetInput defines the request for fetching one set
type GetSetInput struct {
	Name string
}

// GetSetOutput defines the response for fetching one set
type GetSetOutput struct {
	Set *armor.Set
}

// ListSetsInput defines the request for listing sets
type ListSetsInput struct {
	// Names restricts the result to these sets, in this order; empty means all
	Names []string
}

// ListSetsOutput defines the response for listing sets
type ListSetsOutput struct {
	Sets []*armor.Set
}

// GetPieceInput defines the request for looking up one catalog piece
type GetPieceInput struct {
	Rank armor.Rank
	Type armor.PieceType
	Name string
}

// GetPieceOutput defines the response for looking up one catalog piece
type GetPieceOutput struct {
	Piece *armor.Piece
}

// ListPiecesInput defines the request for every piece of one armor set
type ListPiecesInput struct {
	Rank armor.Rank
	Name string
}

// ListPiecesOutput defines the response for every piece of one armor set
type ListPiecesOutput struct {
	Pieces []*armor.Piece
}

// ListPieceNamesInput defines the request for the armor set names of a rank
type ListPieceNamesInput struct {
	Rank armor.Rank
}

// ListPieceNamesOutput defines the response for the armor set names of a rank
type ListPieceNamesOutput struct {
	Names []string
}
