package v1alpha1

import (
	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
)

// ArmorSet is the wire form of a set: its record plus the aggregated stats
type ArmorSet struct {
	Record  *armor.SetRecord `json:"record"`
	Bonuses armor.BonusMap   `json:"bonuses"`
	Sockets []int            `json:"sockets"`
}

// CreateSetRequest asks for a new set built from catalog pieces.
// Pieces is keyed by piece type ("head", "chest", "gloves", "waist", "legs").
type CreateSetRequest struct {
	Name   string            `json:"name"`
	Rank   string            `json:"rank"`
	Pieces map[string]string `json:"pieces"`
}

// CreateSetResponse returns the stored set and the pieces the catalog lacked
type CreateSetResponse struct {
	Set     *ArmorSet      `json:"set"`
	Missing []MissingPiece `json:"missing,omitempty"`
}

// MissingPiece names a requested piece that was not in the catalog
type MissingPiece struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// EditSetRequest swaps one piece of a stored set
type EditSetRequest struct {
	Name      string `json:"name"`
	Rank      string `json:"rank"`
	Type      string `json:"type"`
	PieceName string `json:"piece_name"`
}

// EditSetResponse returns the edited set and the piece it replaced, if any
type EditSetResponse struct {
	Set      *ArmorSet          `json:"set"`
	Previous *armor.PieceRecord `json:"previous,omitempty"`
}

type GetSetRequest struct {
	Name string `json:"name"`
}

type GetSetResponse struct {
	Set *ArmorSet `json:"set"`
}

// ListSetsRequest lists every set, or only the named ones in the given order
type ListSetsRequest struct {
	Names []string `json:"names,omitempty"`
}

type ListSetsResponse struct {
	Sets []*ArmorSet `json:"sets"`
}

type DeleteSetRequest struct {
	Name string `json:"name"`
}

type DeleteSetResponse struct {
	Remaining int `json:"remaining"`
}

// GetPieceRequest looks up one catalog piece
type GetPieceRequest struct {
	Rank string `json:"rank"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type GetPieceResponse struct {
	Piece *armor.PieceRecord `json:"piece"`
}

func convertSetToWire(set *armor.Set) *ArmorSet {
	if set == nil {
		return nil
	}
	return &ArmorSet{
		Record:  set.Serialize(),
		Bonuses: set.AggregateBonuses(),
		Sockets: set.AggregateSockets().Counts(),
	}
}

func convertSetsToWire(sets []*armor.Set) []*ArmorSet {
	out := make([]*ArmorSet, 0, len(sets))
	for _, set := range sets {
		out = append(out, convertSetToWire(set))
	}
	return out
}

// ToSet rebuilds the set carried by the message. Aggregates are recomputed, not trusted.
func (m *ArmorSet) ToSet() (*armor.Set, error) {
	if m == nil {
		return nil, nil
	}
	return armor.DeserializeSet(m.Record)
}
