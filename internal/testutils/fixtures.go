package testutils

import (
	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/testutils/builders"
)

const (
	// TestSetName is the default set name for test fixtures
	TestSetName = "Test Set"

	// TestArmorName is the armor set every catalog fixture piece belongs to
	TestArmorName = "Rathalos"
)

// CreateTestSet returns a full set whose aggregates are
// {buff 1: 4, buff 2: 1, buff 3: 3} and sockets [4, 1, 3, 1]
func CreateTestSet(name string) *armor.Set {
	return builders.NewSetBuilder(name).
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeHead).WithName("Piece 1").
			WithBonus("buff 1", 2).WithSockets(0, 0, 0, 0).Build()).
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeChest).WithName("Piece 2").
			WithBonus("buff 1", 2).WithSockets(1, 0, 0, 0).Build()).
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeArm).WithName("Piece 3").
			WithBonus("buff 2", 1).WithSockets(1, 1, 1, 1).Build()).
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeWaist).WithName("Piece 4").
			WithBonus("buff 3", 3).WithSockets(0, 0, 2, 0).Build()).
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeLeg).WithName("Piece 5").
			WithSockets(2, 0, 0, 0).Build()).
		Build()
}

// CreateTestCatalog returns a catalog with one complete master rank armor set
// named TestArmorName and a head-only set named "Kulu-Ya-Ku"
func CreateTestCatalog() armor.Catalog {
	c := armor.NewCatalog()
	c.Add(armor.RankMaster, TestArmorName, armor.PieceTypeHead, armor.CatalogEntry{
		Sockets: []int{0, 1, 0, 0},
		Bonuses: armor.BonusMap{"Weakness Exploit": 1},
	})
	c.Add(armor.RankMaster, TestArmorName, armor.PieceTypeChest, armor.CatalogEntry{
		Sockets: []int{1, 0, 0, 1},
		Bonuses: armor.BonusMap{"Attack Boost": 2},
	})
	c.Add(armor.RankMaster, TestArmorName, armor.PieceTypeArm, armor.CatalogEntry{
		Sockets: []int{0, 0, 1, 0},
		Bonuses: armor.BonusMap{"Attack Boost": 1, "Critical Eye": 1},
	})
	c.Add(armor.RankMaster, TestArmorName, armor.PieceTypeWaist, armor.CatalogEntry{
		Sockets: []int{2, 0, 0, 0},
		Bonuses: armor.BonusMap{"Weakness Exploit": 1},
	})
	c.Add(armor.RankMaster, TestArmorName, armor.PieceTypeLeg, armor.CatalogEntry{
		Sockets: []int{0, 0, 0, 0},
		Bonuses: armor.BonusMap{"Critical Eye": 2},
	})
	c.Add(armor.RankMaster, "Kulu-Ya-Ku", armor.PieceTypeHead, armor.CatalogEntry{
		Sockets: []int{1, 0, 0, 0},
		Bonuses: armor.BonusMap{"Attack Boost": 1},
	})
	return c
}
