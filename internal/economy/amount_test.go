package economy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
)

func TestScaleAmount(t *testing.T) {
	testCases := []struct {
		name   string
		base   int64
		factor float64
		want   int64
	}{
		{name: "rounds down", base: 10, factor: 1.55, want: 15},
		{name: "identity", base: 7, factor: 1, want: 7},
		{name: "zero base", base: 0, factor: 1e300, want: 0},
		{name: "saturates at max", base: 100, factor: math.Pow(2, 57), want: math.MaxInt64},
		{name: "infinite factor saturates", base: 1, factor: math.Inf(1), want: math.MaxInt64},
		{name: "nan is zero", base: 5, factor: math.NaN(), want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, economy.ScaleAmount(tc.base, tc.factor))
		})
	}
}

func TestAddAmount_Saturates(t *testing.T) {
	assert.Equal(t, int64(5), economy.AddAmount(2, 3))
	assert.Equal(t, int64(math.MaxInt64), economy.AddAmount(math.MaxInt64-1, 10))
	assert.Equal(t, int64(math.MinInt64), economy.AddAmount(math.MinInt64+1, -10))
}

func TestReward_Scale(t *testing.T) {
	r := economy.Reward{Gold: 10, XP: 3, Materials: map[string]int64{"iron": 5}}
	scaled := r.Scale(1.5)

	assert.Equal(t, int64(15), scaled.Gold)
	assert.Equal(t, int64(4), scaled.XP)
	assert.Equal(t, int64(7), scaled.Materials["iron"])
	assert.Equal(t, int64(5), r.Materials["iron"])
}

func TestReward_ScaleSaturates(t *testing.T) {
	r := economy.Reward{Gold: math.MaxInt64 / 2, XP: math.MaxInt64 / 2}
	scaled := r.Scale(3)

	assert.Equal(t, int64(math.MaxInt64), scaled.Gold)
	assert.Equal(t, int64(math.MaxInt64), scaled.XP)
}

func TestLedger_GrantSaturates(t *testing.T) {
	l := economy.NewLedger()
	l.Gold = math.MaxInt64 - 1

	assert.NoError(t, l.Grant(economy.Cost{Gold: 100}))
	assert.Equal(t, int64(math.MaxInt64), l.Gold)
}
