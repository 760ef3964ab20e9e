// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
	armorsetmock "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set/mock"
	"github.com/KirkDiggler/armor-builder/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/armor-builder/internal/repositories/catalog/mock"
)

// ExpectCatalogLoad sets up a single successful load of the cached catalog
func ExpectCatalogLoad(ctx context.Context, mockRepo *catalogmock.MockRepository, c armor.Catalog) *gomock.Call {
	return mockRepo.EXPECT().
		Load(ctx, catalog.LoadInput{}).
		Return(&catalog.LoadOutput{
			Catalog: c,
			Source:  "https://mhw-db.com/armor",
		}, nil)
}

// ExpectSetsLoaded sets up a single LoadAll returning the given sets.
// Each call builds a fresh slice so callers may mutate the result.
func ExpectSetsLoaded(ctx context.Context, mockRepo *armorsetmock.MockRepository, sets ...*armor.Set) *gomock.Call {
	return mockRepo.EXPECT().
		LoadAll(ctx, armorset.LoadAllInput{}).
		DoAndReturn(func(context.Context, armorset.LoadAllInput) (*armorset.LoadAllOutput, error) {
			out := make([]*armor.Set, len(sets))
			copy(out, sets)
			return &armorset.LoadAllOutput{Sets: out}, nil
		})
}
