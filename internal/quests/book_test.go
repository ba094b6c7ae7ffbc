package quests_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
)

type ledgerGrantee struct {
	ledger *economy.Ledger
	xp     int64
	calls  int
}

func (g *ledgerGrantee) GrantReward(r economy.Reward) error {
	g.calls++
	if err := g.ledger.Grant(r.Bundle()); err != nil {
		return err
	}
	g.xp += r.XP
	return nil
}

type failingGrantee struct{}

func (failingGrantee) GrantReward(economy.Reward) error {
	return errors.Internal("store offline")
}

func testDefinitions() []quests.Definition {
	return []quests.Definition{
		{
			ID:   "slayer",
			Kind: quests.KindQuest,
			Objectives: []objectives.Objective{
				{ID: "kills", Target: 5, Criterion: objectives.KillMonster{}},
			},
			Reward: economy.Reward{Gold: 50, XP: 20, Materials: map[string]int64{"gem": 1}},
		},
		{
			ID:   "daily_iron",
			Kind: quests.KindDaily,
			Objectives: []objectives.Objective{
				{ID: "iron", Target: 10, Criterion: objectives.GatherMaterial{MaterialID: "iron"}},
			},
			Reward: economy.Reward{Gold: 10},
		},
		{
			ID:   "builder",
			Kind: quests.KindAchievement,
			Objectives: []objectives.Objective{
				{ID: "forge", Target: 2, Criterion: objectives.UpgradeBuilding{BuildingID: "forge"}},
				{ID: "level", Target: 3, Criterion: objectives.ReachLevel{}},
			},
			Reward: economy.Reward{XP: 100},
		},
	}
}

func killN(b *quests.Book, n int) {
	for i := 0; i < n; i++ {
		b.Track(gameevents.MonsterKilled{MonsterID: "slime"}, nil)
	}
}

func TestBook_KillingFiveMakesQuestClaimable(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	slayer := b.Entry("slayer")
	require.NotNil(t, slayer)

	killN(b, 4)
	assert.Equal(t, quests.StateInProgress, slayer.State())
	assert.Empty(t, b.Claimable())

	killN(b, 1)
	assert.True(t, slayer.Objectives[0].Complete())
	assert.Equal(t, quests.StateCompleted, slayer.State())
	require.Len(t, b.Claimable(), 1)
	assert.Equal(t, "slayer", b.Claimable()[0].ID)
	assert.Len(t, b.Active(), 2)
}

func TestBook_ClaimIsOneTime(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	g := &ledgerGrantee{ledger: economy.NewLedger()}
	killN(b, 5)

	reward, err := b.Claim("slayer", g)
	require.NoError(t, err)
	assert.Equal(t, int64(50), reward.Gold)
	assert.Equal(t, int64(50), g.ledger.Gold)
	assert.Equal(t, int64(1), g.ledger.Balance("gem"))
	assert.Equal(t, int64(20), g.xp)

	before := g.ledger.Clone()
	_, err = b.Claim("slayer", g)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyClaimed(err))
	assert.Equal(t, before, g.ledger)
	assert.Equal(t, 1, g.calls)
	assert.Equal(t, quests.StateClaimed, b.Entry("slayer").State())

	// claimed entries stop tracking
	killN(b, 3)
	assert.Equal(t, int64(5), b.Entry("slayer").Objectives[0].Current)
}

func TestBook_ClaimFailures(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	g := &ledgerGrantee{ledger: economy.NewLedger()}

	_, err := b.Claim("nope", g)
	assert.True(t, errors.IsNotFound(err))

	_, err = b.Claim("slayer", g)
	require.Error(t, err)
	assert.True(t, errors.IsNotCompleted(err))
	assert.Zero(t, g.calls)

	killN(b, 5)
	_, err = b.Claim("slayer", failingGrantee{})
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
	assert.False(t, b.Entry("slayer").Claimed, "a failed grant must not mark the entry")

	_, err = b.Claim("slayer", g)
	assert.NoError(t, err)
}

func TestBook_CompletedEntriesCanRegress(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	ledger := economy.NewLedger()
	daily := b.Entry("daily_iron")

	require.NoError(t, ledger.Credit("iron", 12))
	b.Track(gameevents.MaterialGathered{MaterialID: "iron", Amount: 12}, ledger)
	assert.Equal(t, quests.StateCompleted, daily.State())

	require.NoError(t, ledger.Debit("iron", 9))
	b.Track(gameevents.MaterialGathered{MaterialID: "iron", Amount: -9}, ledger)
	assert.Equal(t, quests.StateInProgress, daily.State())
}

func TestBook_AllObjectivesRequired(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	builder := b.Entry("builder")

	b.Track(gameevents.BuildingUpgraded{BuildingID: "forge", NewLevel: 2}, nil)
	assert.False(t, builder.Completed())

	b.Track(gameevents.PlayerLeveledUp{NewLevel: 3}, nil)
	assert.True(t, builder.Completed())
}

func TestBook_ResetDailies(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	g := &ledgerGrantee{ledger: economy.NewLedger()}
	ledger := economy.NewLedger()
	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.True(t, b.ResetDailies(day1))
	assert.Equal(t, "2024-03-01", b.LastDailyReset)

	require.NoError(t, ledger.Credit("iron", 10))
	b.Track(gameevents.MaterialGathered{MaterialID: "iron"}, ledger)
	_, err := b.Claim("daily_iron", g)
	require.NoError(t, err)
	killN(b, 2)

	// same calendar day, many hours later
	assert.False(t, b.ResetDailies(day1.Add(14*time.Hour)))
	assert.True(t, b.Entry("daily_iron").Claimed)

	// next day, only minutes later
	assert.True(t, b.ResetDailies(time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)))
	daily := b.Entry("daily_iron")
	assert.False(t, daily.Claimed)
	assert.Equal(t, int64(0), daily.Objectives[0].Current)
	assert.Equal(t, int64(2), b.Entry("slayer").Objectives[0].Current, "non-daily progress is kept")
}

func TestBook_Dailies(t *testing.T) {
	b := quests.NewBook(testDefinitions())
	dailies := b.Dailies()
	require.Len(t, dailies, 1)
	assert.Equal(t, "daily_iron", dailies[0].ID)
}

func TestBook_UnknownObjectiveNeverCompletes(t *testing.T) {
	defs := []quests.Definition{{
		ID:   "broken",
		Kind: quests.KindQuest,
		Objectives: []objectives.Objective{
			{ID: "x", Target: 1, Criterion: objectives.Unknown{Type: "build_missing_thing"}},
		},
	}}
	b := quests.NewBook(defs)

	res := b.Track(gameevents.MonsterKilled{}, nil)
	require.Len(t, res.Skipped, 1)
	assert.True(t, errors.IsUnknownObjectiveKind(res.Skipped[0]))
	assert.Equal(t, quests.StateInProgress, b.Entry("broken").State())
}

func TestBook_Reconcile(t *testing.T) {
	defs := testDefinitions()
	b := quests.NewBook(defs[:1])
	killN(b, 2)

	added := b.Reconcile(defs)
	assert.Len(t, added, 2)
	assert.Len(t, b.Entries, 3)
	assert.Equal(t, int64(2), b.Entry("slayer").Objectives[0].Current)
}

func TestBook_NewEntryStartsFresh(t *testing.T) {
	defs := testDefinitions()
	defs[0].Objectives[0].Current = 4

	b := quests.NewBook(defs)
	assert.Equal(t, int64(0), b.Entry("slayer").Objectives[0].Current)

	killN(b, 1)
	assert.Equal(t, int64(4), defs[0].Objectives[0].Current, "definitions are never mutated")
}

func TestDefinition_Validate(t *testing.T) {
	for _, d := range testDefinitions() {
		assert.NoError(t, d.Validate(), d.ID)
	}

	bad := quests.Definition{ID: "x", Kind: "weekly"}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	dup := testDefinitions()[2]
	dup.Objectives[1].ID = dup.Objectives[0].ID
	assert.Error(t, dup.Validate())
}
