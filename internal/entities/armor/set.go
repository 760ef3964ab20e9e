package armor

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// EmptySlotName is shown for a slot without a piece
const EmptySlotName = "-"

// Set is a named armor build: five integrated slots and a reserved charm slot.
//
// The charm slot is carried by the model but takes no part in aggregation,
// replacement or records; the source data never populates it.
// TODO: decide whether charm bonuses count toward AggregateBonuses once charms are in the catalog.
type Set struct {
	Name  string
	slots [slotCount]*Piece
	charm *Piece
}

// NewSet returns an empty set
func NewSet(name string) *Set {
	return &Set{Name: name}
}

// Piece returns the piece in the slot for the given type, or nil
func (s *Set) Piece(pieceType PieceType) *Piece {
	if pieceType == PieceTypeCharm {
		return s.charm
	}
	if i := slotIndex(pieceType); i >= 0 {
		return s.slots[i]
	}
	return nil
}

// ReplacePiece puts piece into the slot for pieceType, discarding the prior occupant.
// The piece must be of the slot's type; the charm slot cannot be written this way.
func (s *Set) ReplacePiece(pieceType PieceType, piece *Piece) error {
	i, err := slotFor(pieceType)
	if err != nil {
		return err
	}
	if piece == nil {
		return errors.InvalidArgumentf("piece for slot %s cannot be nil, use ClearPiece", pieceType)
	}
	if piece.Type() != pieceType {
		return errors.InvalidArgumentf("cannot place %s piece %q in the %s slot", piece.Type(), piece.Name(), pieceType).
			WithReason(ReasonSlotTypeMismatch).
			WithMeta("slot", pieceType.String()).
			WithMeta("piece_type", piece.Type().String())
	}

	s.slots[i] = piece
	return nil
}

// ClearPiece empties the slot for pieceType
func (s *Set) ClearPiece(pieceType PieceType) error {
	i, err := slotFor(pieceType)
	if err != nil {
		return err
	}
	s.slots[i] = nil
	return nil
}

// Charm returns the reserved charm piece, or nil
func (s *Set) Charm() *Piece {
	return s.charm
}

// SetCharm stores a charm piece in the reserved slot
func (s *Set) SetCharm(piece *Piece) error {
	if piece != nil && piece.Type() != PieceTypeCharm {
		return errors.InvalidArgumentf("cannot place %s piece %q in the charm slot", piece.Type(), piece.Name()).
			WithReason(ReasonSlotTypeMismatch)
	}
	s.charm = piece
	return nil
}

// SlotName pairs a slot with the name of the piece in it
type SlotName struct {
	Type PieceType
	Name string
}

// PieceNames lists every integrated slot with its piece name, or EmptySlotName
func (s *Set) PieceNames() []SlotName {
	out := make([]SlotName, 0, slotCount)
	for i, t := range slotTypes {
		name := EmptySlotName
		if s.slots[i] != nil {
			name = s.slots[i].Name()
		}
		out = append(out, SlotName{Type: t, Name: name})
	}
	return out
}

// AggregateBonuses sums bonus levels by name across the occupied slots
func (s *Set) AggregateBonuses() BonusMap {
	total := make(BonusMap)
	for _, p := range s.slots {
		if p == nil {
			continue
		}
		total.Merge(p.bonuses)
	}
	return total
}

// AggregateSockets sums socket counts per size across the occupied slots
func (s *Set) AggregateSockets() SocketProfile {
	var total SocketProfile
	for _, p := range s.slots {
		if p == nil {
			continue
		}
		total = total.Add(p.sockets)
	}
	return total
}

// String implements fmt.Stringer
func (s *Set) String() string {
	parts := make([]string, 0, slotCount)
	for _, sn := range s.PieceNames() {
		parts = append(parts, fmt.Sprintf("%s=%s", sn.Type.RecordKey(), sn.Name))
	}
	return fmt.Sprintf("Set(name=%s, %s)", s.Name, strings.Join(parts, ", "))
}

// ValidateSlot reports whether pieceType names a slot that ReplacePiece and ClearPiece accept
func ValidateSlot(pieceType PieceType) error {
	_, err := slotFor(pieceType)
	return err
}

func slotFor(pieceType PieceType) (int, error) {
	if pieceType == PieceTypeCharm {
		return -1, errors.FailedPreconditionf("the %s slot is reserved and cannot be edited", pieceType).
			WithReason(ReasonReservedSlot)
	}
	i := slotIndex(pieceType)
	if i < 0 {
		return -1, newInvalidPieceType(pieceType.String())
	}
	return i, nil
}
