// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
)

// PieceBuilder provides a fluent interface for building test Piece instances
type PieceBuilder struct {
	pieceType armor.PieceType
	rank      armor.Rank
	name      string
	bonuses   armor.BonusMap
	sockets   []int
}

// NewPieceBuilder creates a new builder with minimal defaults
func NewPieceBuilder(pieceType armor.PieceType) *PieceBuilder {
	return &PieceBuilder{
		pieceType: pieceType,
		rank:      armor.RankMaster,
		name:      "Test Armor",
		bonuses:   armor.BonusMap{},
		sockets:   []int{0, 0, 0, 0},
	}
}

// WithRank sets the piece rank
func (b *PieceBuilder) WithRank(rank armor.Rank) *PieceBuilder {
	b.rank = rank
	return b
}

// WithName sets the armor set name the piece belongs to
func (b *PieceBuilder) WithName(name string) *PieceBuilder {
	b.name = name
	return b
}

// WithBonus adds a bonus level
func (b *PieceBuilder) WithBonus(name string, level int) *PieceBuilder {
	b.bonuses[name] = level
	return b
}

// WithSockets sets the socket counts per size
func (b *PieceBuilder) WithSockets(counts ...int) *PieceBuilder {
	b.sockets = counts
	return b
}

// Build returns the piece, panicking on invalid input since fixtures are static
func (b *PieceBuilder) Build() *armor.Piece {
	piece, err := armor.NewPiece(b.pieceType, b.rank, b.name, b.bonuses, b.sockets)
	if err != nil {
		panic(fmt.Sprintf("invalid test piece: %v", err))
	}
	return piece
}

// SetBuilder provides a fluent interface for building test Set instances
type SetBuilder struct {
	set *armor.Set
}

// NewSetBuilder creates an empty set builder
func NewSetBuilder(name string) *SetBuilder {
	return &SetBuilder{set: armor.NewSet(name)}
}

// WithPiece places a built piece in its own slot
func (b *SetBuilder) WithPiece(piece *armor.Piece) *SetBuilder {
	if err := b.set.ReplacePiece(piece.Type(), piece); err != nil {
		panic(fmt.Sprintf("invalid test set: %v", err))
	}
	return b
}

// Build returns the set
func (b *SetBuilder) Build() *armor.Set {
	return b.set
}
