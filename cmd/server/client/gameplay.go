package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/gameevents"
	"github.com/KirkDiggler/rpg-idle/internal/handlers/game/v1alpha1"
)

var clickTimes int

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Attack the current monster",
	Long: `Attack the current monster. With --times the attack is repeated and
only the last response is printed.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if clickTimes < 1 {
			return fmt.Errorf("--times must be at least 1, got %d", clickTimes)
		}
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.ClickResponse, error) {
			var resp *v1alpha1.ClickResponse
			for i := 0; i < clickTimes; i++ {
				var err error
				resp, err = c.Click(ctx, &v1alpha1.ClickRequest{PlayerID: playerID})
				if err != nil {
					return nil, err
				}
			}
			return resp, nil
		})
	},
}

var eventEnvelope gameevents.Envelope

var recordEventCmd = &cobra.Command{
	Use:   "record-event [type]",
	Short: "Record an external gameplay event",
	Long: `Record an external gameplay event. Examples:

  record-event monster_killed --monster slime --count 3
  record-event material_gathered --material wood --amount 5
  record-event item_collected --item wooden_sword --count 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		env := eventEnvelope
		env.Type = args[0]
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.RecordEventResponse, error) {
			return c.RecordEvent(ctx, &v1alpha1.RecordEventRequest{PlayerID: playerID, Event: env})
		})
	},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [building-id]",
	Short: "Upgrade a town building",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.UpgradeBuildingResponse, error) {
			return c.UpgradeBuilding(ctx, &v1alpha1.UpgradeBuildingRequest{PlayerID: playerID, BuildingID: args[0]})
		})
	},
}

var selectZoneCmd = &cobra.Command{
	Use:   "select-zone [zone-id]",
	Short: "Move to an unlocked zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.SelectZoneResponse, error) {
			return c.SelectZone(ctx, &v1alpha1.SelectZoneRequest{PlayerID: playerID, ZoneID: args[0]})
		})
	},
}

var prestigeCmd = &cobra.Command{
	Use:   "prestige",
	Short: "Reset zone progress for a permanent multiplier",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.PrestigeResponse, error) {
			return c.Prestige(ctx, &v1alpha1.PrestigeRequest{PlayerID: playerID})
		})
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim [quest-id]",
	Short: "Claim a completed quest's reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.ClaimRewardResponse, error) {
			return c.ClaimReward(ctx, &v1alpha1.ClaimRewardRequest{PlayerID: playerID, QuestID: args[0]})
		})
	},
}

var craftCmd = &cobra.Command{
	Use:   "craft [recipe-id]",
	Short: "Craft an item from a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.CraftResponse, error) {
			return c.Craft(ctx, &v1alpha1.CraftRequest{PlayerID: playerID, RecipeID: args[0]})
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip [item-id]",
	Short: "Equip an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.EquipResponse, error) {
			return c.Equip(ctx, &v1alpha1.EquipRequest{PlayerID: playerID, ItemID: args[0]})
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip [slot]",
	Short: "Move the item in a slot back to the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.EquipResponse, error) {
			return c.Equip(ctx, &v1alpha1.EquipRequest{PlayerID: playerID, Slot: args[0]})
		})
	},
}

func init() {
	clickCmd.Flags().IntVar(&clickTimes, "times", 1, "number of attacks")

	recordEventCmd.Flags().StringVar(&eventEnvelope.MonsterID, "monster", "", "monster ID")
	recordEventCmd.Flags().StringVar(&eventEnvelope.ItemID, "item", "", "item ID")
	recordEventCmd.Flags().StringVar(&eventEnvelope.MaterialID, "material", "", "material ID")
	recordEventCmd.Flags().IntVar(&eventEnvelope.Count, "count", 0, "kill count or item quantity")
	recordEventCmd.Flags().Int64Var(&eventEnvelope.Amount, "amount", 0, "material amount")
}
