package game_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	gameeventsmock "github.com/KirkDiggler/rpg-idle/internal/gameevents/mock"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-idle/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
	gamestatemock "github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate/mock"
	"github.com/KirkDiggler/rpg-idle/internal/testutils"
)

func TestClick_SaveFailurePublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	rules := testutils.DefaultRules(t)

	repo := gamestatemock.NewMockRepository(ctrl)
	publisher := gameeventsmock.NewMockPublisher(ctrl)

	repo.EXPECT().
		Get(ctx, gamestate.GetInput{PlayerID: testPlayer}).
		Return(&gamestate.GetOutput{State: testutils.NewGameState(rules, testPlayer)}, nil)
	repo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("store is down"))

	svc, err := game.NewOrchestrator(&game.Config{
		Repository: repo,
		Rules:      rules,
		Publisher:  publisher,
		Roller:     fixedRoller{value: 100},
	})
	require.NoError(t, err)

	_, err = svc.Click(ctx, &game.ClickInput{PlayerID: testPlayer})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestClick_PublishFailureDoesNotFailTheCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	publisher := gameeventsmock.NewMockPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), testPlayer, gomock.Any()).
		Return(errors.Internal("bus is down")).
		AnyTimes()

	repo := gamestate.NewInMemory(nil)
	svc, err := game.NewOrchestrator(&game.Config{
		Repository: repo,
		Rules:      testutils.DefaultRules(t),
		Publisher:  publisher,
		Roller:     fixedRoller{value: 100},
	})
	require.NoError(t, err)
	defer func() { _ = svc.Close(ctx) }()

	_, err = svc.StartSession(ctx, &game.StartSessionInput{PlayerID: testPlayer})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = svc.Click(ctx, &game.ClickInput{PlayerID: testPlayer})
		require.NoError(t, err)
	}

	// the state was committed even though publishing failed
	got, err := repo.Get(ctx, gamestate.GetInput{PlayerID: testPlayer})
	require.NoError(t, err)
	assert.Positive(t, got.State.Metrics.MonstersKilled)
}

func TestGetState_RecentEventsFromJournal(t *testing.T) {
	ctx := context.Background()

	bus, err := gameevents.NewBus(&gameevents.BusConfig{EventBus: events.NewBus()})
	require.NoError(t, err)
	journal, err := gameevents.NewJournal(&gameevents.JournalConfig{Bus: bus})
	require.NoError(t, err)
	journal.Start()
	defer func() { _ = journal.Stop() }()

	svc, err := game.NewOrchestrator(&game.Config{
		Repository:  gamestate.NewInMemory(nil),
		Rules:       testutils.DefaultRules(t),
		Publisher:   bus,
		EventLog:    journal,
		IDGenerator: idgen.NewSequential("session"),
		Roller:      fixedRoller{value: 100},
	})
	require.NoError(t, err)
	defer func() { _ = svc.Close(ctx) }()

	_, err = svc.StartSession(ctx, &game.StartSessionInput{PlayerID: testPlayer})
	require.NoError(t, err)

	killed := false
	for i := 0; i < 10 && !killed; i++ {
		out, err := svc.Click(ctx, &game.ClickInput{PlayerID: testPlayer})
		require.NoError(t, err)
		killed = out.Result.Killed
	}
	require.True(t, killed)

	out, err := svc.GetState(ctx, &game.GetStateInput{PlayerID: testPlayer})
	require.NoError(t, err)
	require.NotEmpty(t, out.State.RecentEvents)
	assert.Equal(t, gameevents.TypeMonsterKilled, out.State.RecentEvents[0].Type)
}

func TestGeneratedIDs_NameSessionsAndCraftedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	rules := testutils.DefaultRules(t)

	ids := idgenmock.NewMockGenerator(ctrl)
	gomock.InOrder(
		ids.EXPECT().Generate().Return("session-a"),
		ids.EXPECT().Generate().Return("sword-a"),
	)

	publisher := gameeventsmock.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), testPlayer, gomock.Any()).Return(nil).AnyTimes()

	repo := gamestate.NewInMemory(nil)
	state := testutils.NewGameState(rules, testPlayer)
	require.NoError(t, state.Ledger.Credit("wood", 5))
	_, err := repo.Save(ctx, gamestate.SaveInput{State: state})
	require.NoError(t, err)

	svc, err := game.NewOrchestrator(&game.Config{
		Repository:  repo,
		Rules:       rules,
		Publisher:   publisher,
		IDGenerator: ids,
		Roller:      fixedRoller{value: 100},
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close(ctx)) }()

	started, err := svc.StartSession(ctx, &game.StartSessionInput{PlayerID: testPlayer})
	require.NoError(t, err)
	assert.Equal(t, "session-a", started.SessionID)

	crafted, err := svc.Craft(ctx, &game.CraftInput{PlayerID: testPlayer, RecipeID: "craft_wooden_sword"})
	require.NoError(t, err)
	assert.Equal(t, "sword-a", crafted.Item.ID)
	assert.Equal(t, "wooden_sword", crafted.Item.BaseID)
}
