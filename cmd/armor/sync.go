package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
)

var syncForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the armor catalog",
	Long:  `Download the armor catalog into the data directory. An existing copy is kept unless --force is given.`,
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Replace an existing catalog copy")
}

func runSync(cmd *cobra.Command, _ []string) error {
	return withService(cmd.Context(), func(service builder.Service) error {
		out, err := service.SyncCatalog(cmd.Context(), &builder.SyncCatalogInput{Force: syncForce})
		if err != nil {
			return err
		}

		if out.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog already present at %s (use --force to refresh)\n", out.Path)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Synced %d pieces to %s\n", out.Pieces, out.Path)
		return nil
	})
}
