package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/internal/handlers/game/v1alpha1"
)

var startSessionCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Start a play session, creating the player on first use",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.StartSessionResponse, error) {
			return c.StartSession(ctx, &v1alpha1.StartSessionRequest{PlayerID: playerID})
		})
	},
}

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End the active play session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.EndSessionResponse, error) {
			return c.EndSession(ctx, &v1alpha1.EndSessionRequest{PlayerID: playerID})
		})
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the player's game state",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.GetStateResponse, error) {
			return c.GetState(ctx, &v1alpha1.GetStateRequest{PlayerID: playerID})
		})
	},
}
