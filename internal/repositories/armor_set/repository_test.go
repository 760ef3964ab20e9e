package armorset_test

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	armorset "github.com/KirkDiggler/armor-builder/internal/repositories/armor_set"
	"github.com/KirkDiggler/armor-builder/internal/testutils"
	"github.com/KirkDiggler/armor-builder/internal/testutils/builders"
)

// RepositoryBehaviorSuite holds the checks every backend must pass.
// Backend suites embed it and set newRepo in SetupTest.
type RepositoryBehaviorSuite struct {
	suite.Suite
	repo armorset.Repository
	ctx  context.Context
}

func (s *RepositoryBehaviorSuite) TestLoadAllEmpty() {
	out, err := s.repo.LoadAll(s.ctx, armorset.LoadAllInput{})
	s.Require().NoError(err)
	s.NotNil(out.Sets)
	s.Empty(out.Sets)
}

func (s *RepositoryBehaviorSuite) TestSaveAndLoadPreservesOrder() {
	sets := []*armor.Set{
		testutils.CreateTestSet("Zinogre Build"),
		armor.NewSet("Empty Build"),
		builders.NewSetBuilder("Alpha Build").
			WithPiece(builders.NewPieceBuilder(armor.PieceTypeLeg).WithName("Leather").WithRank(armor.RankLow).Build()).
			Build(),
	}

	saved, err := s.repo.SaveAll(s.ctx, armorset.SaveAllInput{Sets: sets})
	s.Require().NoError(err)
	s.Equal(3, saved.Saved)

	out, err := s.repo.LoadAll(s.ctx, armorset.LoadAllInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sets, 3)

	for i, set := range sets {
		s.Equal(set.Name, out.Sets[i].Name)
		s.Equal(set.Serialize(), out.Sets[i].Serialize())
	}
	s.Equal(armor.SocketProfile{4, 1, 3, 1}, out.Sets[0].AggregateSockets())
	s.Equal(armor.BonusMap{"buff 1": 4, "buff 2": 1, "buff 3": 3}, out.Sets[0].AggregateBonuses())
}

func (s *RepositoryBehaviorSuite) TestSaveAllReplacesCollection() {
	_, err := s.repo.SaveAll(s.ctx, armorset.SaveAllInput{Sets: []*armor.Set{
		testutils.CreateTestSet("First"),
		testutils.CreateTestSet("Second"),
	}})
	s.Require().NoError(err)

	_, err = s.repo.SaveAll(s.ctx, armorset.SaveAllInput{Sets: []*armor.Set{
		testutils.CreateTestSet("Second"),
	}})
	s.Require().NoError(err)

	out, err := s.repo.LoadAll(s.ctx, armorset.LoadAllInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Sets, 1)
	s.Equal("Second", out.Sets[0].Name)
}

func (s *RepositoryBehaviorSuite) TestSaveAllEmptyCollection() {
	_, err := s.repo.SaveAll(s.ctx, armorset.SaveAllInput{Sets: []*armor.Set{testutils.CreateTestSet("Gone")}})
	s.Require().NoError(err)

	saved, err := s.repo.SaveAll(s.ctx, armorset.SaveAllInput{})
	s.Require().NoError(err)
	s.Equal(0, saved.Saved)

	out, err := s.repo.LoadAll(s.ctx, armorset.LoadAllInput{})
	s.Require().NoError(err)
	s.Empty(out.Sets)
}

func (s *RepositoryBehaviorSuite) TestSaveAllRejectsBadInput() {
	testCases := []struct {
		name string
		sets []*armor.Set
	}{
		{
			name: "duplicate names",
			sets: []*armor.Set{armor.NewSet("Twin"), armor.NewSet("Twin")},
		},
		{
			name: "nil set",
			sets: []*armor.Set{armor.NewSet("Fine"), nil},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.SaveAll(s.ctx, armorset.SaveAllInput{Sets: tc.sets})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
