// Package armorset provides the interface for armor set persistence
package armorset

//go:generate mockgen -destination=mock/mock_repository.go -package=armorsetmock github.com/KirkDiggler/armor-builder/internal/repositories/armor_set Repository

import (
	"context"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// Repository defines the interface for the armor set collection.
// The collection is read and written whole, preserving order.
type Repository interface {
	// LoadAll retrieves every stored set in saved order
	// Returns an empty collection when nothing has been saved yet
	// Returns errors.DataLoss (reason INVALID_SET_RECORD) for corrupt records
	// Returns errors.Internal for storage failures
	LoadAll(ctx context.Context, input LoadAllInput) (*LoadAllOutput, error)

	// SaveAll replaces the stored collection with the given sets
	// Returns errors.InvalidArgument for nil sets or duplicate names
	// Returns errors.Internal for storage failures
	SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error)
}

// LoadAllInput defines the input for loading all sets
type LoadAllInput struct{}

// LoadAllOutput defines the output for loading all sets
type LoadAllOutput struct {
	Sets []*armor.Set
}

// SaveAllInput defines the input for saving all sets
type SaveAllInput struct {
	Sets []*armor.Set
}

// SaveAllOutput defines the output for saving all sets
type SaveAllOutput struct {
	Saved int
}

// serializeAll turns the collection into records, rejecting nil entries and repeated names
func serializeAll(sets []*armor.Set) ([]*armor.SetRecord, error) {
	seen := make(map[string]struct{}, len(sets))
	records := make([]*armor.SetRecord, 0, len(sets))
	for i, set := range sets {
		if set == nil {
			return nil, errors.InvalidArgumentf("set at position %d is nil", i)
		}
		if _, ok := seen[set.Name]; ok {
			return nil, errors.InvalidArgumentf("set name %q appears more than once", set.Name).
				WithMeta("name", set.Name)
		}
		seen[set.Name] = struct{}{}
		records = append(records, set.Serialize())
	}
	return records, nil
}

// deserializeAll rebuilds sets from records, failing on the first corrupt one
func deserializeAll(records []*armor.SetRecord) ([]*armor.Set, error) {
	sets := make([]*armor.Set, 0, len(records))
	for i, record := range records {
		set, err := armor.DeserializeSet(record)
		if err != nil {
			return nil, errors.Wrapf(err, "stored set at position %d is corrupt", i)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
