package combat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/town"
)

type stubRoller struct {
	value int
	err   error
}

func (s *stubRoller) Roll(_ int) (int, error) { return s.value, s.err }
func (s *stubRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.value
	}
	return out, s.err
}

func newCalculator(t *testing.T) *combat.Calculator {
	t.Helper()
	c, err := combat.NewCalculator(combat.DefaultFormula())
	require.NoError(t, err)
	return c
}

func TestClickDamage_StrictlyIncreasingInStr(t *testing.T) {
	c := newCalculator(t)

	withStr := combat.Input{
		Attributes: entities.Attributes{Str: 5},
		Effects:    town.Effects{AutoSpeedBonus: 0},
	}
	withoutStr := combat.Input{
		Attributes: entities.Attributes{Str: 0},
		Effects:    town.Effects{AutoSpeedBonus: 0},
	}

	assert.Greater(t, c.ClickDamage(withStr), c.ClickDamage(withoutStr))

	prev := c.ClickDamage(withoutStr)
	for str := 1; str <= 50; str++ {
		next := c.ClickDamage(combat.Input{Attributes: entities.Attributes{Str: str}})
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestCompute_AppliesEquipmentEffectsAndPrestige(t *testing.T) {
	c := newCalculator(t)
	f := c.Formula()

	in := combat.Input{
		Attributes: entities.Attributes{Str: 4, Wis: 2, Int: 4, Dex: 10},
		Equipped: []entities.Item{
			{ID: "sword", Slot: entities.SlotWeapon, Bonuses: entities.ItemBonuses{ClickDamage: 3, GoldBonus: 0.1}},
			{ID: "ring", Slot: entities.SlotRingLeft, Bonuses: entities.ItemBonuses{AutoDamage: 1, AutoSpeed: 0.5}},
		},
		Effects: town.Effects{
			ClickDamageMult: 0.5,
			ClickDamageFlat: 2,
			AutoDamageMult:  1,
			AutoSpeedBonus:  0.3,
			GoldBonus:       0.05,
		},
		Level:              2,
		PrestigeMultiplier: 2,
	}

	d := c.Compute(in)

	wantClick := (f.ClickBase+4*f.ClickPerStr+2*f.ClickPerLevel+3)*1.5*2 + 2
	wantAuto := (2*f.AutoPerWis + 4*f.AutoPerInt + 2*f.AutoPerLevel + 1) * 2 * 2
	wantAPS := f.BaseAPS + 10*f.APSPerDex + 0.5 + 0.3

	assert.InDelta(t, wantClick, d.ClickDamage, 1e-9)
	assert.InDelta(t, wantAuto, d.AutoDamage, 1e-9)
	assert.InDelta(t, wantAPS, d.AutoAPS, 1e-9)
	assert.InDelta(t, 0.15, d.GoldBonus, 1e-9)
	assert.InDelta(t, wantAuto*wantAPS, d.DPS(), 1e-9)

	assert.Equal(t, d.ClickDamage, c.ClickDamage(in))
	assert.Equal(t, d.AutoDamage, c.AutoDamage(in))
	assert.Equal(t, d.AutoAPS, c.AutoAPS(in))
}

func TestCompute_RecomputesOnEveryCall(t *testing.T) {
	c := newCalculator(t)
	in := combat.Input{Attributes: entities.Attributes{Str: 1}}

	before := c.Compute(in)
	in.Equipped = append(in.Equipped, entities.Item{ID: "axe", Bonuses: entities.ItemBonuses{ClickDamage: 10}})
	after := c.Compute(in)

	assert.InDelta(t, before.ClickDamage+10, after.ClickDamage, 1e-9)
}

func TestAutoAPS_NeverBelowFloor(t *testing.T) {
	c := newCalculator(t)

	in := combat.Input{Effects: town.Effects{AutoSpeedBonus: -100}}
	aps := c.AutoAPS(in)

	assert.Greater(t, aps, 0.0)
	assert.Equal(t, c.Formula().MinAPS, aps)
}

func TestCritChance_Clamped(t *testing.T) {
	c := newCalculator(t)

	high := c.Compute(combat.Input{Effects: town.Effects{CritChance: 5}})
	low := c.Compute(combat.Input{Effects: town.Effects{CritChance: -5}})

	assert.Equal(t, 1.0, high.CritChance)
	assert.Equal(t, 0.0, low.CritChance)
}

func TestNewCalculator_RejectsBadFormula(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*combat.Formula)
	}{
		{name: "zero aps floor", mutate: func(f *combat.Formula) { f.MinAPS = 0 }},
		{name: "flat click curve", mutate: func(f *combat.Formula) { f.ClickPerStr = 0 }},
		{name: "crit multiplier below one", mutate: func(f *combat.Formula) { f.CritMultiplier = 0.5 }},
		{name: "negative wis coefficient", mutate: func(f *combat.Formula) { f.AutoPerWis = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := combat.DefaultFormula()
			tc.mutate(&f)
			_, err := combat.NewCalculator(f)
			assert.Error(t, err)
		})
	}
}

func TestRollClick(t *testing.T) {
	c := newCalculator(t)
	d := combat.Derived{ClickDamage: 10, CritChance: 0.25}

	t.Run("crit at or below chance", func(t *testing.T) {
		hit, err := c.RollClick(&stubRoller{value: 25}, d)
		require.NoError(t, err)
		assert.True(t, hit.Crit)
		assert.Equal(t, 10*c.Formula().CritMultiplier, hit.Damage)
	})

	t.Run("normal hit above chance", func(t *testing.T) {
		hit, err := c.RollClick(&stubRoller{value: 26}, d)
		require.NoError(t, err)
		assert.False(t, hit.Crit)
		assert.Equal(t, 10.0, hit.Damage)
		assert.Equal(t, 26, hit.Roll)
	})

	t.Run("roller failure", func(t *testing.T) {
		_, err := c.RollClick(&stubRoller{err: errors.New("boom")}, d)
		assert.Error(t, err)
	})

	t.Run("nil roller", func(t *testing.T) {
		_, err := c.RollClick(nil, d)
		assert.Error(t, err)
	})
}

func TestCompute_DefaultFormula(t *testing.T) {
	in := combat.Input{Attributes: entities.Attributes{Str: 3}}
	c := newCalculator(t)
	assert.Equal(t, c.Compute(in), combat.Compute(in))
}
