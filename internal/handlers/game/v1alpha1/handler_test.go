package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-idle/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGame *gamemock.MockService
	handler  *v1alpha1.Handler
	ctx      context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = gamemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GameService: s.mockGame,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestStartSession() {
	expected := &game.StartSessionOutput{SessionID: "session-1", Created: true}
	s.mockGame.EXPECT().
		StartSession(s.ctx, &game.StartSessionInput{PlayerID: "player-1"}).
		Return(expected, nil)

	resp, err := s.handler.StartSession(s.ctx, &v1alpha1.StartSessionRequest{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal("session-1", resp.SessionID)
	s.True(resp.Created)
}

func (s *HandlerTestSuite) TestRequiredFields() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "start session without player",
			call: func() error {
				_, err := s.handler.StartSession(s.ctx, &v1alpha1.StartSessionRequest{})
				return err
			},
		},
		{
			name: "click without player",
			call: func() error {
				_, err := s.handler.Click(s.ctx, &v1alpha1.ClickRequest{})
				return err
			},
		},
		{
			name: "upgrade without building",
			call: func() error {
				_, err := s.handler.UpgradeBuilding(s.ctx, &v1alpha1.UpgradeBuildingRequest{PlayerID: "p"})
				return err
			},
		},
		{
			name: "select zone without zone",
			call: func() error {
				_, err := s.handler.SelectZone(s.ctx, &v1alpha1.SelectZoneRequest{PlayerID: "p"})
				return err
			},
		},
		{
			name: "claim without quest",
			call: func() error {
				_, err := s.handler.ClaimReward(s.ctx, &v1alpha1.ClaimRewardRequest{PlayerID: "p"})
				return err
			},
		},
		{
			name: "craft without recipe",
			call: func() error {
				_, err := s.handler.Craft(s.ctx, &v1alpha1.CraftRequest{PlayerID: "p"})
				return err
			},
		},
		{
			name: "equip without item or slot",
			call: func() error {
				_, err := s.handler.Equip(s.ctx, &v1alpha1.EquipRequest{PlayerID: "p"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestRecordEvent_UnwrapsEnvelope() {
	s.mockGame.EXPECT().
		RecordEvent(s.ctx, &game.RecordEventInput{
			PlayerID: "player-1",
			Event:    gameevents.MonsterKilled{MonsterID: "slime", Count: 3},
		}).
		Return(&game.RecordEventOutput{
			Updated: []objectives.Update{{ObjectiveID: "kill_slimes", Before: 0, After: 3}},
		}, nil)

	resp, err := s.handler.RecordEvent(s.ctx, &v1alpha1.RecordEventRequest{
		PlayerID: "player-1",
		Event:    gameevents.Envelope{Type: gameevents.TypeMonsterKilled, MonsterID: "slime", Count: 3},
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Updated, 1)
	s.Equal(int64(3), resp.Updated[0].After)
}

func (s *HandlerTestSuite) TestRecordEvent_BadEnvelope() {
	_, err := s.handler.RecordEvent(s.ctx, &v1alpha1.RecordEventRequest{
		PlayerID: "player-1",
		Event:    gameevents.Envelope{Type: "dance_party"},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestClaimReward_DomainError() {
	s.mockGame.EXPECT().
		ClaimReward(s.ctx, &game.ClaimRewardInput{PlayerID: "player-1", QuestID: "first_blood"}).
		Return(nil, errors.AlreadyClaimedf("quest %s was already claimed", "first_blood"))

	_, err := s.handler.ClaimReward(s.ctx, &v1alpha1.ClaimRewardRequest{
		PlayerID: "player-1",
		QuestID:  "first_blood",
	})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsAlreadyClaimed(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestEquip_MapsSlot() {
	s.mockGame.EXPECT().
		Equip(s.ctx, &game.EquipInput{PlayerID: "player-1", Slot: entities.SlotWeapon}).
		Return(&game.EquipOutput{Character: &entities.Character{}}, nil)

	_, err := s.handler.Equip(s.ctx, &v1alpha1.EquipRequest{PlayerID: "player-1", Slot: "weapon"})
	s.NoError(err)
}

func (s *HandlerTestSuite) TestGetState_NotFound() {
	s.mockGame.EXPECT().
		GetState(s.ctx, &game.GetStateInput{PlayerID: "ghost"}).
		Return(nil, errors.NotFound("player ghost has no game; start a session first"))

	_, err := s.handler.GetState(s.ctx, &v1alpha1.GetStateRequest{PlayerID: "ghost"})
	s.Equal(codes.NotFound, status.Code(err))
}

// TestOverTheWire runs the handler behind a real grpc server so requests
// and responses pass through the service descriptor and the JSON codec.
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterGameServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewGameServiceClient(conn)

	s.mockGame.EXPECT().
		SelectZone(gomock.Any(), &game.SelectZoneInput{PlayerID: "player-1", ZoneID: "forest"}).
		Return(&game.SelectZoneOutput{
			Zone:      progression.ZoneStatus{ZoneID: "forest", Name: "Whispering Forest", ClearCount: 2},
			Encounter: progression.Encounter{ZoneID: "forest", MonsterID: "wolf", MaxHP: 45, HP: 45},
		}, nil)

	resp, err := client.SelectZone(context.Background(), &v1alpha1.SelectZoneRequest{
		PlayerID: "player-1",
		ZoneID:   "forest",
	})
	s.Require().NoError(err)
	s.Equal("Whispering Forest", resp.Zone.Name)
	s.Equal(2, resp.Zone.ClearCount)
	s.Equal("wolf", resp.Encounter.MonsterID)

	s.mockGame.EXPECT().
		UpgradeBuilding(gomock.Any(), &game.UpgradeBuildingInput{PlayerID: "player-1", BuildingID: "forge"}).
		Return(nil, errors.InsufficientFunds("not enough gold"))

	_, err = client.UpgradeBuilding(context.Background(), &v1alpha1.UpgradeBuildingRequest{
		PlayerID:   "player-1",
		BuildingID: "forge",
	})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsInsufficientFunds(errors.FromGRPCError(err)))
}
