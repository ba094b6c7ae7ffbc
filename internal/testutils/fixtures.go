package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
	"github.com/KirkDiggler/rpg-idle/internal/content"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
)

// TestPlayerID is the default player for fixtures
const TestPlayerID = "player-test-001"

// DefaultRules compiles the embedded content pack
func DefaultRules(t testing.TB) *content.Rules {
	t.Helper()

	pack, err := content.Default()
	require.NoError(t, err, "failed to parse default content")

	rules, err := pack.Compile()
	require.NoError(t, err, "failed to compile default content")
	return rules
}

// NewGameState builds a fresh state the way a new player starts
func NewGameState(rules *content.Rules, playerID string) *gamestate.State {
	ledger := economy.NewLedger()
	ledger.Gold = rules.StartingGold

	return &gamestate.State{
		PlayerID:    playerID,
		Character:   entities.NewCharacter(rules.StartingAttributes),
		Ledger:      ledger,
		Town:        rules.Town.NewState(),
		Progression: rules.Zones.NewState(),
		Quests:      quests.NewBook(rules.Quests),
		Metrics:     &analytics.Metrics{},
	}
}

// Item returns a test item for a slot
func Item(id string, slot entities.Slot, bonuses entities.ItemBonuses) entities.Item {
	return entities.Item{ID: id, BaseID: id, Slot: slot, Bonuses: bonuses}
}
