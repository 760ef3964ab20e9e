package mhw

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// remotePiece is one element of the mhw-db armor listing.
// Pointers distinguish a missing key from a zero value.
type remotePiece struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Rank     *string        `json:"rank"`
	Type     *string        `json:"type"`
	ArmorSet *remoteSet     `json:"armorSet"`
	Skills   *[]remoteSkill `json:"skills"`
	Slots    *[]remoteSlot  `json:"slots"`
}

type remoteSet struct {
	Name *string `json:"name"`
}

type remoteSkill struct {
	SkillName *string `json:"skillName"`
	Level     *int    `json:"level"`
}

type remoteSlot struct {
	Rank *int `json:"rank"`
}

type parsedPiece struct {
	rank      armor.Rank
	name      string
	pieceType armor.PieceType
	entry     armor.CatalogEntry
}

func parsePiece(raw json.RawMessage) (*parsedPiece, error) {
	var rp remotePiece
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed armor piece")
	}

	var missing []string
	if rp.ArmorSet == nil || rp.ArmorSet.Name == nil {
		missing = append(missing, "armorSet.name")
	}
	if rp.Rank == nil {
		missing = append(missing, "rank")
	}
	if rp.Type == nil {
		missing = append(missing, "type")
	}
	if rp.Skills == nil {
		missing = append(missing, "skills")
	}
	if rp.Slots == nil {
		missing = append(missing, "slots")
	}
	if len(missing) > 0 {
		return nil, errors.InvalidArgumentf("armor piece %d (%s) is missing %s", rp.ID, rp.Name, strings.Join(missing, ", "))
	}

	rank, err := armor.ParseRank(*rp.Rank)
	if err != nil {
		return nil, errors.Wrapf(err, "armor piece %d (%s)", rp.ID, rp.Name)
	}
	pieceType, err := armor.ParsePieceType(*rp.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "armor piece %d (%s)", rp.ID, rp.Name)
	}

	sockets, err := parseSlots(*rp.Slots)
	if err != nil {
		return nil, errors.Wrapf(err, "armor piece %d (%s)", rp.ID, rp.Name)
	}
	bonuses, err := parseSkills(*rp.Skills)
	if err != nil {
		return nil, errors.Wrapf(err, "armor piece %d (%s)", rp.ID, rp.Name)
	}

	return &parsedPiece{
		rank:      rank,
		name:      *rp.ArmorSet.Name,
		pieceType: pieceType,
		entry: armor.CatalogEntry{
			Sockets: sockets,
			Bonuses: bonuses,
		},
	}, nil
}

// parseSlots counts decoration slots per size; slot ranks run 1 to 4
func parseSlots(slots []remoteSlot) ([]int, error) {
	counts := make([]int, armor.SocketSizes)
	for _, slot := range slots {
		if slot.Rank == nil {
			return nil, errors.InvalidArgument("slot is missing its rank")
		}
		rank := *slot.Rank
		if rank < 1 || rank > armor.SocketSizes {
			return nil, errors.InvalidArgumentf("slot rank %d is out of range", rank).
				WithMeta("slot_rank", rank)
		}
		counts[rank-1]++
	}
	return counts, nil
}

// parseSkills maps skill name to level; a repeated skill keeps the last level
func parseSkills(skills []remoteSkill) (armor.BonusMap, error) {
	bonuses := make(armor.BonusMap, len(skills))
	for _, skill := range skills {
		if skill.SkillName == nil || skill.Level == nil {
			return nil, errors.InvalidArgument("skill is missing skillName or level")
		}
		bonuses[*skill.SkillName] = *skill.Level
	}
	return bonuses, nil
}
