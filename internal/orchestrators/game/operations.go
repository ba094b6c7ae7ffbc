package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-idle/internal/combat"
	"github.com/KirkDiggler/rpg-idle/internal/content"
	"github.com/KirkDiggler/rpg-idle/internal/economy"
	"github.com/KirkDiggler/rpg-idle/internal/entities"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/progression"
)

func (o *orchestrator) Click(ctx context.Context, input *ClickInput) (*ClickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		hit    combat.Hit
		result progression.HitResult
	)
	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		var err error
		hit, err = o.rules.Calculator.RollClick(o.roller, o.derived(tx.state))
		if err != nil {
			return err
		}
		result, err = o.hit(tx, hit.Damage)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Clear != nil {
		slog.InfoContext(ctx, "Zone cleared",
			"player_id", input.PlayerID,
			"zone_id", result.Clear.ZoneID,
			"clear_count", result.Clear.ClearCount)
	}

	return &ClickOutput{
		Hit:       hit,
		Result:    result,
		LevelsUp:  tx.levels,
		Completed: tx.completed,
	}, nil
}

// RecordEvent feeds an externally sourced gameplay event into the engine.
// Only gathering, collecting and kills come from outside; the other event
// types are produced by the engine itself and are rejected.
func (o *orchestrator) RecordEvent(ctx context.Context, input *RecordEventInput) (*RecordEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Event == nil {
		return nil, errors.InvalidArgument("event is required")
	}

	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		switch ev := input.Event.(type) {
		case gameevents.MonsterKilled:
			if ev.MonsterID == "" || ev.Count < 0 {
				return errors.InvalidArgument("monster_killed needs a monster ID and a non-negative count")
			}
			tx.state.Metrics.RecordKills(int64(ev.EffectiveCount()))
		case gameevents.MaterialGathered:
			if err := tx.state.Ledger.Credit(ev.MaterialID, ev.Amount); err != nil {
				return err
			}
			if ev.MaterialID == economy.ResourceGold {
				tx.state.Metrics.RecordGold(ev.Amount)
			}
		case gameevents.ItemCollected:
			if ev.ItemID == "" || ev.Qty < 0 {
				return errors.InvalidArgument("item_collected needs an item ID and a non-negative quantity")
			}
			if def, ok := o.rules.Item(ev.ItemID); ok {
				for range ev.EffectiveQty() {
					tx.state.Character.AddItem(o.newItem(def))
				}
			}
		default:
			return errors.InvalidArgumentf("event %s is produced by the engine and cannot be recorded", ev.Type())
		}
		tx.emit(input.Event)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, skipped := range tx.skipped {
		slog.WarnContext(ctx, "Objective skipped", "player_id", input.PlayerID, "error", skipped)
	}

	return &RecordEventOutput{
		Updated:   tx.updates,
		Skipped:   skippedMessages(tx.skipped),
		Completed: tx.completed,
	}, nil
}

func (o *orchestrator) UpgradeBuilding(ctx context.Context, input *UpgradeBuildingInput) (*UpgradeBuildingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BuildingID == "" {
		return nil, errors.InvalidArgument("building ID is required")
	}

	var level int
	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		var err error
		level, err = o.rules.Town.Upgrade(tx.state.Town, tx.state.Ledger, input.BuildingID)
		if err != nil {
			return err
		}
		tx.emit(gameevents.BuildingUpgraded{BuildingID: input.BuildingID, NewLevel: level})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Building upgraded",
		"player_id", input.PlayerID,
		"building_id", input.BuildingID,
		"level", level)

	return &UpgradeBuildingOutput{
		BuildingID: input.BuildingID,
		NewLevel:   level,
		Ledger:     tx.state.Ledger,
		Completed:  tx.completed,
	}, nil
}

func (o *orchestrator) SelectZone(ctx context.Context, input *SelectZoneInput) (*SelectZoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument("zone ID is required")
	}

	var status progression.ZoneStatus
	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		player := progression.Player{Level: tx.state.Character.Level}
		if err := o.rules.Zones.SelectZone(tx.state.Progression, input.ZoneID, player); err != nil {
			return err
		}
		var err error
		status, err = o.rules.Zones.Status(tx.state.Progression, input.ZoneID, player)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SelectZoneOutput{Zone: status, Encounter: tx.state.Progression.Encounter}, nil
}

func (o *orchestrator) Prestige(ctx context.Context, input *PrestigeInput) (*PrestigeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		prestige progression.Prestige
		reset    []string
	)
	_, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		var err error
		prestige, err = o.rules.Zones.PerformPrestige(tx.state.Progression)
		if err != nil {
			return err
		}
		reset = o.rules.Town.ResetForPrestige(tx.state.Town)
		tx.state.Metrics.RecordPrestige()
		tx.emit(gameevents.PrestigePerformed{Level: prestige.Level})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Prestige performed",
		"player_id", input.PlayerID,
		"level", prestige.Level,
		"multiplier", prestige.Multiplier,
		"reset_zones", prestige.ResetZones,
		"reset_buildings", reset)

	return &PrestigeOutput{Prestige: prestige, ResetBuildings: reset}, nil
}

func (o *orchestrator) ClaimReward(ctx context.Context, input *ClaimRewardInput) (*ClaimRewardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	var reward economy.Reward
	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		var err error
		reward, err = tx.state.Quests.Claim(input.QuestID, grantReward{o: o, tx: tx})
		if err != nil {
			return err
		}
		tx.state.Metrics.RecordQuestCompleted()
		tx.emit(gameevents.QuestClaimed{QuestID: input.QuestID})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Quest claimed",
		"player_id", input.PlayerID,
		"quest_id", input.QuestID,
		"gold", reward.Gold,
		"xp", reward.XP)

	return &ClaimRewardOutput{Reward: reward, LevelsUp: tx.levels}, nil
}

func (o *orchestrator) Craft(ctx context.Context, input *CraftInput) (*CraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	recipe, ok := o.rules.Recipe(input.RecipeID)
	if !ok {
		return nil, errors.NotFoundf("recipe %s not found", input.RecipeID)
	}
	def, ok := o.rules.Item(recipe.ItemID)
	if !ok {
		return nil, errors.Internalf("recipe %s produces unknown item %s", recipe.ID, recipe.ItemID)
	}

	var item entities.Item
	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		if err := tx.state.Ledger.Spend(recipe.Cost); err != nil {
			return err
		}
		item = o.newItem(def)
		tx.state.Character.AddItem(item)
		tx.state.Metrics.RecordCraft()
		tx.emit(
			gameevents.ItemCrafted{RecipeID: recipe.ID, ItemID: def.ID},
			gameevents.ItemCollected{ItemID: def.ID, Qty: 1},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Item crafted",
		"player_id", input.PlayerID,
		"recipe_id", recipe.ID,
		"item_id", item.ID)

	return &CraftOutput{Item: item, Completed: tx.completed}, nil
}

func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" && input.Slot == "" {
		return nil, errors.InvalidArgument("item ID or slot is required")
	}

	tx, err := o.transact(ctx, input.PlayerID, txnOptions{}, func(tx *txn) error {
		if input.ItemID != "" {
			return tx.state.Character.Equip(input.ItemID)
		}
		return tx.state.Character.Unequip(input.Slot)
	})
	if err != nil {
		return nil, err
	}

	return &EquipOutput{Character: tx.state.Character, Derived: o.derived(tx.state)}, nil
}

func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tx, err := o.transact(ctx, input.PlayerID, txnOptions{readOnly: true}, func(*txn) error { return nil })
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: o.snapshot(tx)}, nil
}

func (o *orchestrator) newItem(def content.ItemDef) entities.Item {
	return entities.Item{
		ID:      o.idGen.Generate(),
		BaseID:  def.ID,
		Slot:    def.Slot,
		Bonuses: def.Bonuses,
	}
}
