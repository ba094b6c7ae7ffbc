// Package client provides commands that call the GameService of a running
// server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/handlers/game/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	playerID   string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running rpg-idle server",
	Long:  `Client commands make real gRPC requests against a running server and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player", "", "Player ID")
	_ = ClientCmd.MarkPersistentFlagRequired("player") // nolint:errcheck // flag is defined above

	// Session
	ClientCmd.AddCommand(startSessionCmd)
	ClientCmd.AddCommand(endSessionCmd)

	// Gameplay
	ClientCmd.AddCommand(clickCmd)
	ClientCmd.AddCommand(recordEventCmd)
	ClientCmd.AddCommand(upgradeCmd)
	ClientCmd.AddCommand(selectZoneCmd)
	ClientCmd.AddCommand(prestigeCmd)
	ClientCmd.AddCommand(claimCmd)
	ClientCmd.AddCommand(craftCmd)
	ClientCmd.AddCommand(equipCmd)
	ClientCmd.AddCommand(unequipCmd)

	// Queries
	ClientCmd.AddCommand(stateCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to server")
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (*v1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and a request timeout, then prints
// the response
func call[Resp any](fn func(ctx context.Context, client *v1alpha1.GameServiceClient) (*Resp, error)) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return errors.FromGRPCError(err)
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	return nil
}
