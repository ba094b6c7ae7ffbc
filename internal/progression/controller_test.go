package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
)

func testZones() []progression.Zone {
	return []progression.Zone{
		{
			ID:            "meadow",
			Monsters:      []string{"slime", "rat"},
			BossID:        "king_slime",
			MonsterHP:     10,
			KillGold:      2,
			KillXP:        1,
			KillsPerClear: 3,
			Rewards:       economy.Reward{Gold: 100, XP: 10, Materials: map[string]int64{"wood": 4}},
		},
		{
			ID:             "forest",
			Unlock:         progression.Requirement{Type: progression.RequirementZoneCleared, ZoneID: "meadow"},
			Monsters:       []string{"wolf"},
			BossID:         "alpha_wolf",
			MonsterHP:      50,
			KillsPerClear:  5,
			KeepOnPrestige: true,
			Rewards:        economy.Reward{Gold: 300},
		},
		{
			ID:            "caves",
			Unlock:        progression.Requirement{Type: progression.RequirementPlayerLevel, Value: 10},
			Monsters:      []string{"bat"},
			BossID:        "dragon",
			MonsterHP:     200,
			KillsPerClear: 10,
			Prestige:      true,
		},
		{
			ID:            "rift",
			Unlock:        progression.Requirement{Type: progression.RequirementPrestigeLevel, Value: 1},
			Monsters:      []string{"voidling"},
			BossID:        "void_lord",
			MonsterHP:     1000,
			KillsPerClear: 10,
		},
	}
}

func newController(t *testing.T) *progression.Controller {
	t.Helper()
	c, err := progression.NewController(testZones(), progression.DefaultTuning())
	require.NoError(t, err)
	return c
}

func TestNewController_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		zones func() []progression.Zone
	}{
		{name: "no zones", zones: func() []progression.Zone { return nil }},
		{name: "duplicate id", zones: func() []progression.Zone {
			z := testZones()
			z[1].ID = "meadow"
			return z
		}},
		{name: "unknown required zone", zones: func() []progression.Zone {
			z := testZones()
			z[1].Unlock.ZoneID = "swamp"
			return z
		}},
		{name: "unknown requirement type", zones: func() []progression.Zone {
			z := testZones()
			z[1].Unlock.Type = "guild_rank"
			return z
		}},
		{name: "prestige zone kept on prestige", zones: func() []progression.Zone {
			z := testZones()
			z[2].KeepOnPrestige = true
			return z
		}},
		{name: "zero kills per clear", zones: func() []progression.Zone {
			z := testZones()
			z[0].KillsPerClear = 0
			return z
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := progression.NewController(tc.zones(), progression.DefaultTuning())
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}

	t.Run("negative tuning", func(t *testing.T) {
		tuning := progression.DefaultTuning()
		tuning.RewardPerClear = -1
		_, err := progression.NewController(testZones(), tuning)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestController_StatusAndUnlocks(t *testing.T) {
	c := newController(t)
	s := c.NewState()
	player := progression.Player{Level: 1}

	statuses := c.Zones(s, player)
	require.Len(t, statuses, 4)
	assert.Equal(t, progression.ZoneActive, statuses[0].State)
	assert.Equal(t, progression.ZoneLocked, statuses[1].State)
	assert.Equal(t, progression.ZoneLocked, statuses[2].State)
	assert.Equal(t, progression.ZoneLocked, statuses[3].State)

	_, err := c.ClearZone(s, "meadow")
	require.NoError(t, err)

	forest, err := c.Status(s, "forest", player)
	require.NoError(t, err)
	assert.Equal(t, progression.ZoneUnlocked, forest.State)

	require.NoError(t, c.SelectZone(s, "forest", player))
	meadow, err := c.Status(s, "meadow", player)
	require.NoError(t, err)
	assert.Equal(t, progression.ZoneCleared, meadow.State)
	assert.Equal(t, 1, meadow.ClearCount)

	// requirements are evaluated live, not cached
	caves, err := c.Status(s, "caves", player)
	require.NoError(t, err)
	assert.Equal(t, progression.ZoneLocked, caves.State)
	caves, err = c.Status(s, "caves", progression.Player{Level: 10})
	require.NoError(t, err)
	assert.Equal(t, progression.ZoneUnlocked, caves.State)

	_, err = c.Status(s, "swamp", player)
	assert.True(t, errors.IsNotFound(err))
}

func TestController_SelectZone(t *testing.T) {
	c := newController(t)
	s := c.NewState()

	err := c.SelectZone(s, "caves", progression.Player{Level: 3})
	require.Error(t, err)
	assert.True(t, errors.IsZoneLocked(err))
	assert.Equal(t, "meadow", s.CurrentZone)

	err = c.SelectZone(s, "swamp", progression.Player{Level: 3})
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, c.SelectZone(s, "caves", progression.Player{Level: 12}))
	assert.Equal(t, "caves", s.CurrentZone)
	assert.Equal(t, "caves", s.Encounter.ZoneID)
	assert.Equal(t, "bat", s.Encounter.MonsterID)
}

func TestController_ClearZone(t *testing.T) {
	c := newController(t)
	s := c.NewState()

	first, err := c.ClearZone(s, "meadow")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ClearCount)
	assert.Equal(t, 1.0, first.RewardMultiplier)
	assert.Equal(t, int64(100), first.Rewards.Gold)
	assert.Equal(t, int64(4), first.Rewards.Materials["wood"])
	assert.Equal(t, "meadow", s.HighestZoneCleared)

	second, err := c.ClearZone(s, "meadow")
	require.NoError(t, err)
	assert.Greater(t, second.RewardMultiplier, first.RewardMultiplier)
	assert.Greater(t, second.Rewards.Gold, first.Rewards.Gold)

	_, err = c.ClearZone(s, "caves")
	require.NoError(t, err)
	_, err = c.ClearZone(s, "forest")
	require.NoError(t, err)
	assert.Equal(t, "caves", s.HighestZoneCleared, "highest follows zone order")

	_, err = c.ClearZone(s, "swamp")
	assert.True(t, errors.IsNotFound(err))
}

func TestTuning_MultipliersAreMonotonic(t *testing.T) {
	tuning := progression.DefaultTuning()

	for p := 0; p <= 5; p++ {
		for n := 0; n < 500; n++ {
			assert.GreaterOrEqual(t, tuning.Difficulty(n+1, p), tuning.Difficulty(n, p))
			assert.GreaterOrEqual(t, tuning.Reward(n+1, p), tuning.Reward(n, p))
			assert.GreaterOrEqual(t, tuning.Difficulty(n, p+1), tuning.Difficulty(n, p))
			assert.GreaterOrEqual(t, tuning.Reward(n, p+1), tuning.Reward(n, p))
		}
		assert.GreaterOrEqual(t, tuning.Prestige(p+1), tuning.Prestige(p))
	}

	assert.Equal(t, 1.0, tuning.Difficulty(0, 0))
	assert.Equal(t, 1.0, tuning.Reward(0, 0))
	assert.Equal(t, 1.0, tuning.Prestige(0))
}

func TestController_MultipliersFollowClears(t *testing.T) {
	c := newController(t)
	s := c.NewState()

	prevDiff := c.DifficultyMultiplier(s, "meadow")
	prevReward := c.RewardMultiplier(s, "meadow")
	for i := 0; i < 20; i++ {
		_, err := c.ClearZone(s, "meadow")
		require.NoError(t, err)

		diff := c.DifficultyMultiplier(s, "meadow")
		reward := c.RewardMultiplier(s, "meadow")
		assert.GreaterOrEqual(t, diff, prevDiff)
		assert.GreaterOrEqual(t, reward, prevReward)
		prevDiff, prevReward = diff, reward
	}
}

func TestController_PrestigeNotAvailable(t *testing.T) {
	c := newController(t)
	s := c.NewState()
	_, err := c.ClearZone(s, "meadow")
	require.NoError(t, err)
	_, err = c.ClearZone(s, "forest")
	require.NoError(t, err)

	before := s.Clone()
	assert.False(t, c.CanPrestige(s))

	for i := 0; i < 3; i++ {
		_, err := c.PerformPrestige(s)
		require.Error(t, err)
		assert.True(t, errors.IsPrestigeNotAvailable(err))
	}
	assert.Equal(t, before, s)
}

func TestController_PerformPrestige(t *testing.T) {
	c := newController(t)
	s := c.NewState()
	player := progression.Player{Level: 20}

	for _, id := range []string{"meadow", "meadow", "forest", "caves"} {
		_, err := c.ClearZone(s, id)
		require.NoError(t, err)
	}
	require.NoError(t, c.SelectZone(s, "caves", player))
	require.True(t, c.CanPrestige(s))
	assert.False(t, c.Unlocked(s, "rift", player))

	p, err := c.PerformPrestige(s)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, []string{"caves", "meadow"}, p.ResetZones)
	assert.Equal(t, c.Tuning().Prestige(1), p.Multiplier)

	assert.Equal(t, 1, s.PrestigeLevel)
	assert.Equal(t, "meadow", s.CurrentZone)
	assert.Equal(t, 0, s.ClearCount("meadow"))
	assert.Equal(t, 0, s.ClearCount("caves"))
	assert.Equal(t, 1, s.ClearCount("forest"), "forest keeps its clears")
	assert.Equal(t, "caves", s.HighestZoneCleared)
	assert.False(t, c.CanPrestige(s))
	assert.True(t, c.Unlocked(s, "rift", player))
	assert.Greater(t, c.PrestigeMultiplier(s), 1.0)

	_, err = c.PerformPrestige(s)
	assert.True(t, errors.IsPrestigeNotAvailable(err))
	assert.Equal(t, 1, s.PrestigeLevel)
}

func TestController_Reconcile(t *testing.T) {
	c := newController(t)
	s := &progression.State{CurrentZone: "removed"}

	c.Reconcile(s)
	assert.Equal(t, "meadow", s.CurrentZone)
	assert.NotNil(t, s.Clears)
	assert.Equal(t, "meadow", s.Encounter.ZoneID)
}
