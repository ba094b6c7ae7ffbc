package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

func TestLedger_CreditDebit(t *testing.T) {
	l := economy.NewLedger()

	require.NoError(t, l.Credit(economy.ResourceGold, 100))
	require.NoError(t, l.Credit("iron", 7))
	assert.Equal(t, int64(100), l.Balance(economy.ResourceGold))
	assert.Equal(t, int64(7), l.Balance("iron"))
	assert.Equal(t, int64(0), l.Balance("wood"))

	require.NoError(t, l.Debit("iron", 7))
	assert.Equal(t, int64(0), l.Balance("iron"))

	err := l.Debit(economy.ResourceGold, 101)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientFunds(err))
	assert.Equal(t, int64(100), l.Gold, "rejected debit must not clamp")
}

func TestLedger_RejectsInvalidMovements(t *testing.T) {
	testCases := []struct {
		name     string
		resource string
		amount   int64
	}{
		{name: "negative credit", resource: "iron", amount: -1},
		{name: "empty resource", resource: "", amount: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := economy.NewLedger()
			err := l.Credit(tc.resource, tc.amount)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))

			err = l.Debit(tc.resource, tc.amount)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLedger_SpendIsAllOrNothing(t *testing.T) {
	l := economy.NewLedger()
	require.NoError(t, l.Grant(economy.Cost{Gold: 50, Materials: map[string]int64{"iron": 3, "wood": 1}}))

	cost := economy.Cost{Gold: 40, Materials: map[string]int64{"iron": 2, "wood": 2}}
	assert.False(t, l.CanAfford(cost))

	before := l.Clone()
	err := l.Spend(cost)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientFunds(err))
	assert.Equal(t, "wood", errors.GetMeta(err)["resource_id"])
	assert.Equal(t, before, l)

	require.NoError(t, l.Credit("wood", 1))
	require.True(t, l.CanAfford(cost))
	require.NoError(t, l.Spend(cost))
	assert.Equal(t, int64(10), l.Gold)
	assert.Equal(t, int64(1), l.Balance("iron"))
	assert.Equal(t, int64(0), l.Balance("wood"))
}

func TestLedger_SpendRejectsNegativeLines(t *testing.T) {
	l := economy.NewLedger()
	require.NoError(t, l.Credit(economy.ResourceGold, 10))

	err := l.Spend(economy.Cost{Gold: -5})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, int64(10), l.Gold)
}

func TestLedger_CloneIsIndependent(t *testing.T) {
	l := economy.NewLedger()
	require.NoError(t, l.Credit("iron", 2))

	c := l.Clone()
	require.NoError(t, c.Credit("iron", 5))

	assert.Equal(t, int64(2), l.Balance("iron"))
	assert.Equal(t, int64(7), c.Balance("iron"))
	assert.Equal(t, []string{"iron"}, l.MaterialIDs())
}

func TestCost_IsZero(t *testing.T) {
	assert.True(t, economy.Cost{}.IsZero())
	assert.True(t, economy.Cost{Materials: map[string]int64{"iron": 0}}.IsZero())
	assert.False(t, economy.Cost{Gold: 1}.IsZero())
}
