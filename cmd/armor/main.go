// Package main is the entry point for the armor-builder CLI and gRPC server
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/cmd/armor/client"
	"github.com/KirkDiggler/armor-builder/internal/config"
)

var (
	configPath string
	logLevel   string

	// cfg is loaded before any subcommand runs
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "armor",
	Short: "Build and compare Monster Hunter armor sets",
	Long: `armor keeps a local copy of the armor catalog, builds named sets from its pieces,
and shows their combined skills and decoration slots. It can also serve the sets over gRPC.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "armor.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	slog.SetDefault(cfg.Log.NewLogger())
	return nil
}
