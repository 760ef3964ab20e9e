package armor_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog armor.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = armor.NewCatalog()
	s.catalog.Add(armor.RankMaster, "Rathalos", armor.PieceTypeHead, armor.CatalogEntry{
		Sockets: []int{0, 1, 0, 0},
		Bonuses: armor.BonusMap{"Weakness Exploit": 1},
	})
	s.catalog.Add(armor.RankMaster, "Rathalos", armor.PieceTypeChest, armor.CatalogEntry{
		Sockets: []int{1, 0, 0, 1},
		Bonuses: armor.BonusMap{"Attack Boost": 2},
	})
	s.catalog.Add(armor.RankMaster, "Kulu", armor.PieceTypeLeg, armor.CatalogEntry{})
}

func (s *CatalogTestSuite) TestLookup() {
	piece, err := s.catalog.Lookup(armor.PieceTypeChest, armor.RankMaster, "Rathalos")
	s.Require().NoError(err)
	s.Require().NotNil(piece)

	s.Equal(armor.PieceTypeChest, piece.Type())
	s.Equal(armor.RankMaster, piece.Rank())
	s.Equal("Rathalos", piece.Name())
	s.Equal(armor.BonusMap{"Attack Boost": 2}, piece.Bonuses())
	s.Equal(armor.SocketProfile{1, 0, 0, 1}, piece.Sockets())
}

func (s *CatalogTestSuite) TestLookupDefaults() {
	piece, err := s.catalog.Lookup(armor.PieceTypeLeg, armor.RankMaster, "Kulu")
	s.Require().NoError(err)
	s.Require().NotNil(piece)

	s.Equal(armor.SocketProfile{}, piece.Sockets())
	s.Empty(piece.Bonuses())
}

func (s *CatalogTestSuite) TestLookupAbsent() {
	testCases := []struct {
		name      string
		pieceType armor.PieceType
		armorName string
	}{
		{name: "unknown name", pieceType: armor.PieceTypeHead, armorName: "Nergigante"},
		{name: "type not in set", pieceType: armor.PieceTypeWaist, armorName: "Rathalos"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			piece, err := s.catalog.Lookup(tc.pieceType, armor.RankMaster, tc.armorName)
			s.NoError(err)
			s.Nil(piece)
		})
	}
}

func (s *CatalogTestSuite) TestLookupUnknownRank() {
	catalog := armor.Catalog{armor.RankMaster: armor.RankCatalog{}}

	piece, err := catalog.Lookup(armor.PieceTypeHead, armor.RankLow, "Leather")

	s.Nil(piece)
	s.Require().Error(err)
	s.ErrorIs(err, armor.ErrUnknownRank)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("low", errors.GetMeta(err)["rank"])
}

func (s *CatalogTestSuite) TestNames() {
	names, err := s.catalog.Names(armor.RankMaster)
	s.Require().NoError(err)
	s.Equal([]string{"Kulu", "Rathalos"}, names)

	names, err = s.catalog.Names(armor.RankLow)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *CatalogTestSuite) TestPieceTypes() {
	types, err := s.catalog.PieceTypes(armor.RankMaster, "Rathalos")
	s.Require().NoError(err)
	s.Equal([]armor.PieceType{armor.PieceTypeHead, armor.PieceTypeChest}, types)
}

func (s *CatalogTestSuite) TestAddReplaces() {
	s.catalog.Add(armor.RankMaster, "Rathalos", armor.PieceTypeHead, armor.CatalogEntry{
		Sockets: []int{0, 0, 0, 1},
	})

	piece, err := s.catalog.Lookup(armor.PieceTypeHead, armor.RankMaster, "Rathalos")
	s.Require().NoError(err)
	s.Equal(armor.SocketProfile{0, 0, 0, 1}, piece.Sockets())
}
