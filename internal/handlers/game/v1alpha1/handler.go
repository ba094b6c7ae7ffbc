// Package v1alpha1 handles the GameService grpc interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GameService
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

func requirePlayer(playerID string) error {
	if playerID == "" {
		return errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	return nil
}

// StartSession starts a play session, creating the game on first use
func (h *Handler) StartSession(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.gameService.StartSession(ctx, &game.StartSessionInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// EndSession ends the active play session
func (h *Handler) EndSession(ctx context.Context, req *EndSessionRequest) (*EndSessionResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.gameService.EndSession(ctx, &game.EndSessionInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// Click performs one manual attack
func (h *Handler) Click(ctx context.Context, req *ClickRequest) (*ClickResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.gameService.Click(ctx, &game.ClickInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// RecordEvent decodes the event envelope and feeds it to the engine
func (h *Handler) RecordEvent(ctx context.Context, req *RecordEventRequest) (*RecordEventResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	ev, err := req.Event.Unwrap()
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.gameService.RecordEvent(ctx, &game.RecordEventInput{
		PlayerID: req.PlayerID,
		Event:    ev,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// UpgradeBuilding upgrades a town building by one level
func (h *Handler) UpgradeBuilding(ctx context.Context, req *UpgradeBuildingRequest) (*UpgradeBuildingResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.BuildingID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("building_id is required"))
	}

	output, err := h.gameService.UpgradeBuilding(ctx, &game.UpgradeBuildingInput{
		PlayerID:   req.PlayerID,
		BuildingID: req.BuildingID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// SelectZone moves the player to an unlocked zone
func (h *Handler) SelectZone(ctx context.Context, req *SelectZoneRequest) (*SelectZoneResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.ZoneID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("zone_id is required"))
	}

	output, err := h.gameService.SelectZone(ctx, &game.SelectZoneInput{
		PlayerID: req.PlayerID,
		ZoneID:   req.ZoneID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// Prestige resets progress for a permanent multiplier
func (h *Handler) Prestige(ctx context.Context, req *PrestigeRequest) (*PrestigeResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.gameService.Prestige(ctx, &game.PrestigeInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// ClaimReward pays out a completed quest
func (h *Handler) ClaimReward(ctx context.Context, req *ClaimRewardRequest) (*ClaimRewardResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.QuestID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("quest_id is required"))
	}

	output, err := h.gameService.ClaimReward(ctx, &game.ClaimRewardInput{
		PlayerID: req.PlayerID,
		QuestID:  req.QuestID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// Craft turns materials into an item
func (h *Handler) Craft(ctx context.Context, req *CraftRequest) (*CraftResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.RecipeID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("recipe_id is required"))
	}

	output, err := h.gameService.Craft(ctx, &game.CraftInput{
		PlayerID: req.PlayerID,
		RecipeID: req.RecipeID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// Equip equips an inventory item or empties a slot
func (h *Handler) Equip(ctx context.Context, req *EquipRequest) (*EquipResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}
	if req.ItemID == "" && req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id or slot is required"))
	}

	output, err := h.gameService.Equip(ctx, &game.EquipInput{
		PlayerID: req.PlayerID,
		ItemID:   req.ItemID,
		Slot:     entities.Slot(req.Slot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}

// GetState returns a snapshot of the player's game
func (h *Handler) GetState(ctx context.Context, req *GetStateRequest) (*GetStateResponse, error) {
	if err := requirePlayer(req.PlayerID); err != nil {
		return nil, err
	}

	output, err := h.gameService.GetState(ctx, &game.GetStateInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return output, nil
}
