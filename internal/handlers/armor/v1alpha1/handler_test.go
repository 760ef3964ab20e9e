package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	v1alpha1 "github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	buildermock "github.com/KirkDiggler/armor-builder/internal/orchestrators/builder/mock"
	"github.com/KirkDiggler/armor-builder/internal/testutils"
	"github.com/KirkDiggler/armor-builder/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *buildermock.MockService
	client      *v1alpha1.Client
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = buildermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.mockService})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterArmorServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()
	s.T().Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.client = v1alpha1.NewClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateSet() {
	created := testutils.CreateTestSet("Raid")
	s.mockService.EXPECT().
		CreateSet(gomock.Any(), &builder.CreateSetInput{
			Name: "Raid",
			Rank: armor.RankMaster,
			Pieces: map[armor.PieceType]string{
				armor.PieceTypeHead: "Rathalos",
				armor.PieceTypeLeg:  "Nergigante",
			},
		}).
		Return(&builder.CreateSetOutput{
			Set:     created,
			Missing: []armor.SlotName{{Type: armor.PieceTypeLeg, Name: "Nergigante"}},
		}, nil)

	resp, err := s.client.CreateSet(s.ctx, &v1alpha1.CreateSetRequest{
		Name:   "Raid",
		Rank:   "master",
		Pieces: map[string]string{"head": "Rathalos", "legs": "Nergigante"},
	})
	s.Require().NoError(err)
	s.Equal(armor.BonusMap{"buff 1": 4, "buff 2": 1, "buff 3": 3}, resp.Set.Bonuses)
	s.Equal([]int{4, 1, 3, 1}, resp.Set.Sockets)
	s.Equal([]v1alpha1.MissingPiece{{Type: "legs", Name: "Nergigante"}}, resp.Missing)

	set, err := resp.Set.ToSet()
	s.Require().NoError(err)
	s.Equal(created.PieceNames(), set.PieceNames())
}

func (s *HandlerTestSuite) TestCreateSetValidation() {
	_, err := s.client.CreateSet(s.ctx, &v1alpha1.CreateSetRequest{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "rank")
}

func (s *HandlerTestSuite) TestCreateSetRejectsUnknownPieceType() {
	_, err := s.client.CreateSet(s.ctx, &v1alpha1.CreateSetRequest{
		Name:   "Raid",
		Rank:   "master",
		Pieces: map[string]string{"cape": "Rathalos"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.HasReason(err, armor.ReasonInvalidPieceType))
}

func (s *HandlerTestSuite) TestEditSet() {
	set := testutils.CreateTestSet("Raid")
	previous := set.Piece(armor.PieceTypeHead)
	replacement := builders.NewPieceBuilder(armor.PieceTypeHead).
		WithName("Rathalos").
		WithSockets(1, 0, 0, 0).
		Build()
	s.Require().NoError(set.ReplacePiece(armor.PieceTypeHead, replacement))

	s.mockService.EXPECT().
		EditSet(gomock.Any(), &builder.EditSetInput{
			Name:      "Raid",
			Rank:      armor.RankMaster,
			Type:      armor.PieceTypeHead,
			PieceName: "Rathalos",
		}).
		Return(&builder.EditSetOutput{Set: set, Previous: previous}, nil)

	resp, err := s.client.EditSet(s.ctx, &v1alpha1.EditSetRequest{
		Name:      "Raid",
		Rank:      "master",
		Type:      "head",
		PieceName: "Rathalos",
	})
	s.Require().NoError(err)
	s.Equal([]int{5, 1, 3, 1}, resp.Set.Sockets)
	s.Require().NotNil(resp.Previous)
	s.Equal("Piece 1", *resp.Previous.Name)
}

func (s *HandlerTestSuite) TestGetSetNotFoundKeepsMetadata() {
	s.mockService.EXPECT().
		GetSet(gomock.Any(), &builder.GetSetInput{Name: "Ghost"}).
		Return(nil, errors.NotFoundf("armor set %q not found", "Ghost").WithMeta("name", "Ghost"))

	_, err := s.client.GetSet(s.ctx, &v1alpha1.GetSetRequest{Name: "Ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Ghost", errors.GetMeta(err)["name"])
}

func (s *HandlerTestSuite) TestListSets() {
	s.mockService.EXPECT().
		ListSets(gomock.Any(), &builder.ListSetsInput{Names: []string{"B", "A"}}).
		Return(&builder.ListSetsOutput{Sets: []*armor.Set{
			testutils.CreateTestSet("B"),
			armor.NewSet("A"),
		}}, nil)

	resp, err := s.client.ListSets(s.ctx, &v1alpha1.ListSetsRequest{Names: []string{"B", "A"}})
	s.Require().NoError(err)
	s.Require().Len(resp.Sets, 2)
	s.Equal("B", *resp.Sets[0].Record.Name)
	s.Equal("A", *resp.Sets[1].Record.Name)
	s.Empty(resp.Sets[1].Bonuses)
	s.Equal([]int{0, 0, 0, 0}, resp.Sets[1].Sockets)
}

func (s *HandlerTestSuite) TestDeleteSet() {
	s.mockService.EXPECT().
		DeleteSet(gomock.Any(), &builder.DeleteSetInput{Name: "Raid"}).
		Return(&builder.DeleteSetOutput{Remaining: 2}, nil)

	resp, err := s.client.DeleteSet(s.ctx, &v1alpha1.DeleteSetRequest{Name: "Raid"})
	s.Require().NoError(err)
	s.Equal(2, resp.Remaining)
}

func (s *HandlerTestSuite) TestGetPiece() {
	piece := builders.NewPieceBuilder(armor.PieceTypeArm).
		WithName("Rathalos").
		WithBonus("Attack Boost", 1).
		WithSockets(0, 0, 1, 0).
		Build()
	s.mockService.EXPECT().
		GetPiece(gomock.Any(), &builder.GetPieceInput{
			Rank: armor.RankMaster,
			Type: armor.PieceTypeArm,
			Name: "Rathalos",
		}).
		Return(&builder.GetPieceOutput{Piece: piece}, nil)

	resp, err := s.client.GetPiece(s.ctx, &v1alpha1.GetPieceRequest{
		Rank: "master",
		Type: "gloves",
		Name: "Rathalos",
	})
	s.Require().NoError(err)

	got, err := armor.DeserializePiece(resp.Piece)
	s.Require().NoError(err)
	s.Equal(piece.Bonuses(), got.Bonuses())
	s.Equal(piece.Sockets(), got.Sockets())
}

func (s *HandlerTestSuite) TestGetPieceRejectsBadRank() {
	_, err := s.client.GetPiece(s.ctx, &v1alpha1.GetPieceRequest{
		Rank: "g",
		Type: "head",
		Name: "Rathalos",
	})
	s.Require().Error(err)
	s.True(errors.HasReason(err, armor.ReasonInvalidRank))
}
