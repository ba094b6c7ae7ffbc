package game

import (
	"time"

	"github.com/KirkDiggler/rpg-idle/internal/analytics"
	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/objectives"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
	"github.com/KirkDiggler/rpg-idle/internal/quests"
)

// StartSessionInput defines the request for starting a play session
type StartSessionInput struct {
	PlayerID string
}

// StartSessionOutput defines the response for starting a play session
type StartSessionOutput struct {
	SessionID string    `json:"session_id"`
	Created   bool      `json:"created"`
	State     *Snapshot `json:"state"`
}

// EndSessionInput defines the request for ending a play session
type EndSessionInput struct {
	PlayerID string
}

// EndSessionOutput defines the response for ending a play session
type EndSessionOutput struct {
	// Ended is false when no session was active
	Ended   bool              `json:"ended"`
	Metrics analytics.Metrics `json:"metrics"`
}

// ClickInput defines the request for a manual attack
type ClickInput struct {
	PlayerID string
}

// ClickOutput defines the response for a manual attack
type ClickOutput struct {
	Hit       combat.Hit            `json:"hit"`
	Result    progression.HitResult `json:"result"`
	LevelsUp  []int                 `json:"levels_up,omitempty"`
	Completed []string              `json:"completed,omitempty"`
}

// RecordEventInput defines the request for feeding an external gameplay
// event into the engine
type RecordEventInput struct {
	PlayerID string
	Event    gameevents.Event
}

// RecordEventOutput defines the response for a recorded event
type RecordEventOutput struct {
	Updated   []objectives.Update `json:"updated,omitempty"`
	Skipped   []string            `json:"skipped,omitempty"`
	Completed []string            `json:"completed,omitempty"`
}

// UpgradeBuildingInput defines the request for upgrading a building
type UpgradeBuildingInput struct {
	PlayerID   string
	BuildingID string
}

// UpgradeBuildingOutput defines the response for upgrading a building
type UpgradeBuildingOutput struct {
	BuildingID string          `json:"building_id"`
	NewLevel   int             `json:"new_level"`
	Ledger     *economy.Ledger `json:"ledger"`
	Completed  []string        `json:"completed,omitempty"`
}

// SelectZoneInput defines the request for moving to a zone
type SelectZoneInput struct {
	PlayerID string
	ZoneID   string
}

// SelectZoneOutput defines the response for moving to a zone
type SelectZoneOutput struct {
	Zone      progression.ZoneStatus `json:"zone"`
	Encounter progression.Encounter  `json:"encounter"`
}

// PrestigeInput defines the request for a prestige reset
type PrestigeInput struct {
	PlayerID string
}

// PrestigeOutput defines the response for a prestige reset
type PrestigeOutput struct {
	Prestige       progression.Prestige `json:"prestige"`
	ResetBuildings []string             `json:"reset_buildings,omitempty"`
}

// ClaimRewardInput defines the request for claiming a quest reward
type ClaimRewardInput struct {
	PlayerID string
	QuestID  string
}

// ClaimRewardOutput defines the response for claiming a quest reward
type ClaimRewardOutput struct {
	Reward   economy.Reward `json:"reward"`
	LevelsUp []int          `json:"levels_up,omitempty"`
}

// CraftInput defines the request for crafting a recipe
type CraftInput struct {
	PlayerID string
	RecipeID string
}

// CraftOutput defines the response for crafting a recipe
type CraftOutput struct {
	Item      entities.Item `json:"item"`
	Completed []string      `json:"completed,omitempty"`
}

// EquipInput defines the request for changing equipment. ItemID equips an
// inventory item; when ItemID is empty the item in Slot is unequipped.
type EquipInput struct {
	PlayerID string
	ItemID   string
	Slot     entities.Slot
}

// EquipOutput defines the response for changing equipment
type EquipOutput struct {
	Character *entities.Character `json:"character"`
	Derived   combat.Derived      `json:"derived"`
}

// GetStateInput defines the request for reading a player's state
type GetStateInput struct {
	PlayerID string
}

// GetStateOutput defines the response for reading a player's state
type GetStateOutput struct {
	State *Snapshot `json:"state"`
}

// Multipliers are the scaling factors in effect for the current zone
type Multipliers struct {
	Difficulty float64 `json:"difficulty"`
	Reward     float64 `json:"reward"`
	Prestige   float64 `json:"prestige"`
}

// BuildingStatus is one building as the player sees it
type BuildingStatus struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    int           `json:"level"`
	MaxLevel int           `json:"max_level"`
	NextCost *economy.Cost `json:"next_cost,omitempty"`
}

// QuestStatus is one quest entry as the player sees it
type QuestStatus struct {
	ID         string                 `json:"id"`
	Kind       quests.Kind            `json:"kind"`
	State      quests.State           `json:"state"`
	Objectives []objectives.Objective `json:"objectives"`
	Reward     economy.Reward         `json:"reward"`
}

// Snapshot is a read-only view of everything a player owns plus the
// numbers derived from it
type Snapshot struct {
	PlayerID      string                   `json:"player_id"`
	Character     *entities.Character      `json:"character"`
	Derived       combat.Derived           `json:"derived"`
	Ledger        *economy.Ledger          `json:"ledger"`
	CurrentZone   string                   `json:"current_zone"`
	PrestigeLevel int                      `json:"prestige_level"`
	CanPrestige   bool                     `json:"can_prestige"`
	Multipliers   Multipliers              `json:"multipliers"`
	Encounter     progression.Encounter    `json:"encounter"`
	Zones         []progression.ZoneStatus `json:"zones"`
	Buildings     []BuildingStatus         `json:"buildings"`
	Quests        []QuestStatus            `json:"quests"`
	Metrics       analytics.Metrics        `json:"metrics"`
	Rates         analytics.Rates          `json:"rates"`
	SessionActive bool                     `json:"session_active"`
	RecentEvents  []gameevents.Envelope    `json:"recent_events,omitempty"`
	UpdatedAt     time.Time                `json:"updated_at"`
}
