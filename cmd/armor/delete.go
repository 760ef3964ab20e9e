package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
)

var deleteName string

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored set",
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteName, "name", "n", "", "Name of the set to delete (required)")
	_ = deleteCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runDelete(cmd *cobra.Command, _ []string) error {
	return withService(cmd.Context(), func(service builder.Service) error {
		out, err := service.DeleteSet(cmd.Context(), &builder.DeleteSetInput{Name: deleteName})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q, %d sets remain\n", deleteName, out.Remaining)
		return nil
	})
}
