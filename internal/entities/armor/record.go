package armor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PieceRecord is the persisted form of a piece.
// Nil fields mean the key was missing from the source document.
type PieceRecord struct {
	Name    *string  `json:"name"`
	Type    *string  `json:"type"`
	Rank    *string  `json:"rank"`
	Bonuses BonusMap `json:"bonuses"`
	Sockets []int    `json:"sockets"`
}

// isEmpty reports whether the record carries no keys at all, the absent marker
func (r *PieceRecord) isEmpty() bool {
	return r == nil ||
		(r.Name == nil && r.Type == nil && r.Rank == nil && r.Bonuses == nil && r.Sockets == nil)
}

// Serialize returns the persisted form of the piece
func (p *Piece) Serialize() *PieceRecord {
	name := p.name
	pieceType := p.pieceType.String()
	rank := p.rank.String()
	return &PieceRecord{
		Name:    &name,
		Type:    &pieceType,
		Rank:    &rank,
		Bonuses: p.bonuses.Clone(),
		Sockets: p.sockets.Counts(),
	}
}

// DeserializePiece rebuilds a piece from its record.
// A nil or empty record is an empty slot and yields nil, nil.
func DeserializePiece(record *PieceRecord) (*Piece, error) {
	if record.isEmpty() {
		return nil, nil
	}

	var missing []string
	if record.Name == nil {
		missing = append(missing, "name")
	}
	if record.Type == nil {
		missing = append(missing, "type")
	}
	if record.Rank == nil {
		missing = append(missing, "rank")
	}
	if record.Bonuses == nil {
		missing = append(missing, "bonuses")
	}
	if record.Sockets == nil {
		missing = append(missing, "sockets")
	}
	if len(missing) > 0 {
		return nil, newInvalidPieceRecord(nil, "piece record is missing keys %v", missing)
	}

	pieceType, err := ParsePieceType(*record.Type)
	if err != nil {
		return nil, newInvalidPieceRecord(err, "piece record %q has an invalid type", *record.Name)
	}
	rank, err := ParseRank(*record.Rank)
	if err != nil {
		return nil, newInvalidPieceRecord(err, "piece record %q has an invalid rank", *record.Name)
	}
	piece, err := NewPiece(pieceType, rank, *record.Name, record.Bonuses, record.Sockets)
	if err != nil {
		return nil, newInvalidPieceRecord(err, "piece record %q is invalid", *record.Name)
	}
	return piece, nil
}

// SetRecord is the persisted form of a set: a name plus one entry per
// integrated slot keyed by record key. A present key with a nil value is an
// empty slot; a missing key makes the record invalid.
type SetRecord struct {
	Name  *string
	Slots map[string]*PieceRecord
}

// MarshalJSON writes the record as a flat object, empty slots as null
func (r SetRecord) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(r.Slots)+1)
	if r.Name != nil {
		doc["name"] = *r.Name
	}
	for key, piece := range r.Slots {
		if piece == nil {
			doc[key] = nil
			continue
		}
		doc[key] = piece
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads a flat object, keeping track of which slot keys were present
func (r *SetRecord) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*r = SetRecord{Slots: make(map[string]*PieceRecord, slotCount)}

	if raw, ok := doc["name"]; ok && !isNull(raw) {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return fmt.Errorf("set record name: %w", err)
		}
		r.Name = &name
	}

	for _, key := range recordKeys {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		if isNull(raw) {
			r.Slots[key] = nil
			continue
		}
		var piece PieceRecord
		if err := json.Unmarshal(raw, &piece); err != nil {
			return fmt.Errorf("set record slot %s: %w", key, err)
		}
		r.Slots[key] = &piece
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Serialize returns the persisted form of the set; the charm slot is not persisted
func (s *Set) Serialize() *SetRecord {
	name := s.Name
	record := &SetRecord{
		Name:  &name,
		Slots: make(map[string]*PieceRecord, slotCount),
	}
	for i, key := range recordKeys {
		if s.slots[i] == nil {
			record.Slots[key] = nil
			continue
		}
		record.Slots[key] = s.slots[i].Serialize()
	}
	return record
}

// DeserializeSet rebuilds a set from its record.
// The name and all five slot keys must be present.
func DeserializeSet(record *SetRecord) (*Set, error) {
	if record == nil {
		return nil, newInvalidSetRecord(nil, "set record is empty")
	}

	var missing []string
	if record.Name == nil {
		missing = append(missing, "name")
	}
	for _, key := range recordKeys {
		if _, ok := record.Slots[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, newInvalidSetRecord(nil, "set record is missing keys %v", missing)
	}

	set := NewSet(*record.Name)
	for i, key := range recordKeys {
		piece, err := DeserializePiece(record.Slots[key])
		if err != nil {
			return nil, newInvalidSetRecord(err, "set record %q has an invalid %s piece", *record.Name, key)
		}
		if piece == nil {
			continue
		}
		if err := set.ReplacePiece(slotTypes[i], piece); err != nil {
			return nil, newInvalidSetRecord(err, "set record %q has a misplaced %s piece", *record.Name, key)
		}
	}
	return set, nil
}
