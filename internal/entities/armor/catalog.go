package armor

import (
	"sort"
)

// CatalogEntry is what the catalog knows about one piece
type CatalogEntry struct {
	Sockets []int    `json:"sockets,omitempty"`
	Bonuses BonusMap `json:"bonuses,omitempty"`
}

// RankCatalog maps armor set name to piece type to entry
type RankCatalog map[string]map[PieceType]CatalogEntry

// Catalog is the read-only table of available pieces,
// keyed rank -> armor set name -> piece type
type Catalog map[Rank]RankCatalog

// NewCatalog returns a catalog with every rank present and empty
func NewCatalog() Catalog {
	c := make(Catalog, len(AllRanks()))
	for _, r := range AllRanks() {
		c[r] = make(RankCatalog)
	}
	return c
}

// Add records an entry, creating the armor set bucket on demand.
// A later entry for the same piece replaces the earlier one.
func (c Catalog) Add(rank Rank, name string, pieceType PieceType, entry CatalogEntry) {
	byName, ok := c[rank]
	if !ok {
		byName = make(RankCatalog)
		c[rank] = byName
	}
	byType, ok := byName[name]
	if !ok {
		byType = make(map[PieceType]CatalogEntry)
		byName[name] = byType
	}
	byType[pieceType] = entry
}

// Ranks returns the ranks present in the catalog, low to master
func (c Catalog) Ranks() []Rank {
	out := make([]Rank, 0, len(c))
	for _, r := range AllRanks() {
		if _, ok := c[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Lookup builds the piece of the given type from the named armor set.
// A rank missing from the catalog is a caller error (UnknownRank); a name or
// type missing under a known rank is a normal absence and yields nil, nil.
func (c Catalog) Lookup(pieceType PieceType, rank Rank, name string) (*Piece, error) {
	byName, ok := c[rank]
	if !ok {
		return nil, newUnknownRank(rank, c.Ranks())
	}

	entry, ok := byName[name][pieceType]
	if !ok {
		return nil, nil
	}

	sockets := entry.Sockets
	if sockets == nil {
		sockets = make([]int, SocketSizes)
	}

	return NewPiece(pieceType, rank, name, entry.Bonuses, sockets)
}

// Names returns the armor set names listed for a rank, sorted
func (c Catalog) Names(rank Rank) ([]string, error) {
	byName, ok := c[rank]
	if !ok {
		return nil, newUnknownRank(rank, c.Ranks())
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// PieceTypes returns the piece types available for an armor set, in slot order
// with charm last. Unknown names yield an empty list.
func (c Catalog) PieceTypes(rank Rank, name string) ([]PieceType, error) {
	byName, ok := c[rank]
	if !ok {
		return nil, newUnknownRank(rank, c.Ranks())
	}

	var out []PieceType
	for _, t := range AllPieceTypes() {
		if _, ok := byName[name][t]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}
