// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-idle/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-idle",
	Short: "Incremental RPG progression server",
	Long: `rpg-idle runs the progression engine of an incremental RPG behind a gRPC
interface: combat, economy, town, zones, quests and session analytics.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
