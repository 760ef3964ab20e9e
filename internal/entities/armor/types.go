// Package armor holds the armor piece and armor set model: ranks, piece types,
// socket profiles, bonuses, catalog lookup and the record forms used for persistence.
package armor

// Rank represents the tier a piece belongs to
type Rank string

// Define all ranks, lowest first
const (
	RankLow    Rank = "low"
	RankHigh   Rank = "high"
	RankMaster Rank = "master"
)

// String returns the wire form of the rank
func (r Rank) String() string {
	return string(r)
}

// IsValid checks if the rank is one of the known ranks
func (r Rank) IsValid() bool {
	switch r {
	case RankLow, RankHigh, RankMaster:
		return true
	default:
		return false
	}
}

// AllRanks returns every rank ordered low to master
func AllRanks() []Rank {
	return []Rank{RankLow, RankHigh, RankMaster}
}

// ParseRank converts wire text to a Rank
func ParseRank(s string) (Rank, error) {
	rank := Rank(s)
	if !rank.IsValid() {
		return "", newInvalidRank(s)
	}
	return rank, nil
}

// PieceType represents the slot kind a piece occupies
type PieceType string

// Define all piece types. Arm and Leg keep the wire names used by the catalog source.
const (
	PieceTypeHead  PieceType = "head"
	PieceTypeChest PieceType = "chest"
	PieceTypeArm   PieceType = "gloves"
	PieceTypeWaist PieceType = "waist"
	PieceTypeLeg   PieceType = "legs"
	PieceTypeCharm PieceType = "charm"
)

// slotCount is the number of integrated slots a set carries
const slotCount = 5

// slotTypes is the fixed slot order used for aggregation, naming and records
var slotTypes = [slotCount]PieceType{
	PieceTypeHead,
	PieceTypeChest,
	PieceTypeArm,
	PieceTypeWaist,
	PieceTypeLeg,
}

// recordKeys are the set record keys, index-aligned with slotTypes
var recordKeys = [slotCount]string{"head", "chest", "arm", "waist", "leg"}

// String returns the wire form of the piece type
func (t PieceType) String() string {
	return string(t)
}

// IsValid checks if the piece type is one of the known types
func (t PieceType) IsValid() bool {
	return t.IsIntegrated() || t == PieceTypeCharm
}

// IsIntegrated reports whether the type has a slot that takes part in
// aggregation, replacement and persistence. Charm is reserved.
func (t PieceType) IsIntegrated() bool {
	return slotIndex(t) >= 0
}

// RecordKey returns the key used for this slot in a set record,
// or an empty string for the reserved charm type
func (t PieceType) RecordKey() string {
	if i := slotIndex(t); i >= 0 {
		return recordKeys[i]
	}
	return ""
}

// SlotTypes returns the integrated piece types in slot order
func SlotTypes() []PieceType {
	out := make([]PieceType, slotCount)
	copy(out, slotTypes[:])
	return out
}

// AllPieceTypes returns every piece type including the reserved charm
func AllPieceTypes() []PieceType {
	return append(SlotTypes(), PieceTypeCharm)
}

// ParsePieceType converts wire text to a PieceType
func ParsePieceType(s string) (PieceType, error) {
	t := PieceType(s)
	if !t.IsValid() {
		return "", newInvalidPieceType(s)
	}
	return t, nil
}

func slotIndex(t PieceType) int {
	for i, st := range slotTypes {
		if st == t {
			return i
		}
	}
	return -1
}
