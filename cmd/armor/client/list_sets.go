package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

var listSetsCmd = &cobra.Command{
	Use:   "list-sets [names...]",
	Short: "List stored sets, optionally only the named ones",
	RunE:  runListSets,
}

func runListSets(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createArmorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ListSets(ctx, &v1alpha1.ListSetsRequest{Names: args})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d sets\n", len(resp.Sets))
	for _, wire := range resp.Sets {
		set, err := wire.ToSet()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Set(set))
	}
	return nil
}
