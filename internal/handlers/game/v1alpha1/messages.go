package v1alpha1

import (
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

// StartSessionRequest starts (and on first use creates) a player's game
type StartSessionRequest struct {
	PlayerID string `json:"player_id"`
}

// EndSessionRequest ends a player's session
type EndSessionRequest struct {
	PlayerID string `json:"player_id"`
}

// ClickRequest is one manual attack
type ClickRequest struct {
	PlayerID string `json:"player_id"`
}

// RecordEventRequest feeds an external gameplay event to the engine
type RecordEventRequest struct {
	PlayerID string              `json:"player_id"`
	Event    gameevents.Envelope `json:"event"`
}

// UpgradeBuildingRequest upgrades one town building
type UpgradeBuildingRequest struct {
	PlayerID   string `json:"player_id"`
	BuildingID string `json:"building_id"`
}

// SelectZoneRequest moves the player to a zone
type SelectZoneRequest struct {
	PlayerID string `json:"player_id"`
	ZoneID   string `json:"zone_id"`
}

// PrestigeRequest performs a prestige reset
type PrestigeRequest struct {
	PlayerID string `json:"player_id"`
}

// ClaimRewardRequest claims a completed quest
type ClaimRewardRequest struct {
	PlayerID string `json:"player_id"`
	QuestID  string `json:"quest_id"`
}

// CraftRequest crafts a recipe
type CraftRequest struct {
	PlayerID string `json:"player_id"`
	RecipeID string `json:"recipe_id"`
}

// EquipRequest equips an inventory item, or empties Slot when ItemID is
// empty
type EquipRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id,omitempty"`
	Slot     string `json:"slot,omitempty"`
}

// GetStateRequest reads a player's state
type GetStateRequest struct {
	PlayerID string `json:"player_id"`
}

// Responses carry the orchestrator outputs as they are.
type (
	StartSessionResponse    = game.StartSessionOutput
	EndSessionResponse      = game.EndSessionOutput
	ClickResponse           = game.ClickOutput
	RecordEventResponse     = game.RecordEventOutput
	UpgradeBuildingResponse = game.UpgradeBuildingOutput
	SelectZoneResponse      = game.SelectZoneOutput
	PrestigeResponse        = game.PrestigeOutput
	ClaimRewardResponse     = game.ClaimRewardOutput
	CraftResponse           = game.CraftOutput
	EquipResponse           = game.EquipOutput
	GetStateResponse        = game.GetStateOutput
)
