package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/armor-builder/internal/output"
)

var compareOut string

var compareCmd = &cobra.Command{
	Use:   "compare [set names...]",
	Short: "Export stored sets side by side to a spreadsheet",
	Long: `Write one row per set with its pieces, decoration slots and combined skill levels.
With no names every stored set is exported.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareOut, "out", "", "Output .xlsx path (default <data_dir>/compare.xlsx)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	path := compareOut
	if path == "" {
		path = filepath.Join(cfg.DataDir, "compare.xlsx")
	}

	return withService(cmd.Context(), func(service builder.Service) error {
		out, err := service.ListSets(cmd.Context(), &builder.ListSetsInput{Names: args})
		if err != nil {
			return err
		}
		if err := output.ExportSetsXLSX(path, out.Sets); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Compared %d sets in %s\n", len(out.Sets), path)
		return nil
	})
}
