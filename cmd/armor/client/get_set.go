package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

var setName string

var getSetCmd = &cobra.Command{
	Use:   "get-set",
	Short: "Get a stored set by name",
	RunE:  runGetSet,
}

func init() {
	getSetCmd.Flags().StringVarP(&setName, "name", "n", "", "Set name (required)")
	_ = getSetCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runGetSet(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createArmorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetSet(ctx, &v1alpha1.GetSetRequest{Name: setName})
	if err != nil {
		return err
	}

	set, err := resp.Set.ToSet()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Set(set))
	return nil
}
