package armor

import (
	"fmt"
)

// Piece is a single equippable armor piece.
// It is immutable once built: accessors hand out copies.
type Piece struct {
	pieceType PieceType
	rank      Rank
	name      string
	bonuses   BonusMap
	sockets   SocketProfile
}

// NewPiece validates and builds a piece
func NewPiece(pieceType PieceType, rank Rank, name string, bonuses BonusMap, sockets []int) (*Piece, error) {
	if !pieceType.IsValid() {
		return nil, newInvalidPieceType(pieceType.String())
	}
	if !rank.IsValid() {
		return nil, newInvalidRank(rank.String())
	}
	profile, err := NewSocketProfile(sockets)
	if err != nil {
		return nil, err
	}

	return &Piece{
		pieceType: pieceType,
		rank:      rank,
		name:      name,
		bonuses:   bonuses.Clone(),
		sockets:   profile,
	}, nil
}

// Type returns the slot kind of the piece
func (p *Piece) Type() PieceType {
	return p.pieceType
}

// Rank returns the rank of the piece
func (p *Piece) Rank() Rank {
	return p.rank
}

// Name returns the armor set name the piece belongs to
func (p *Piece) Name() string {
	return p.name
}

// Bonuses returns a copy of the piece bonuses
func (p *Piece) Bonuses() BonusMap {
	return p.bonuses.Clone()
}

// Sockets returns the socket profile of the piece
func (p *Piece) Sockets() SocketProfile {
	return p.sockets
}

// String implements fmt.Stringer
func (p *Piece) String() string {
	return fmt.Sprintf("Piece(rank=%s, name=%s, type=%s)", p.rank, p.name, p.pieceType)
}
