package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

var (
	editName     string
	editRank     string
	editPiece    string
	editNewPiece string
)

var editCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Swap one piece of a stored set",
	Example: `  armor edit -n "Crit build" -r master -p gloves --new-piece Kulu-Ya-Ku`,
	Args:    cobra.NoArgs,
	RunE:    runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "Name of the set to edit (required)")
	editCmd.Flags().StringVarP(&editRank, "rank", "r", "", "Rank of the new piece (required)")
	editCmd.Flags().StringVarP(&editPiece, "piece", "p", "", "Slot to replace: head, chest, gloves, waist or legs (required)")
	editCmd.Flags().StringVar(&editNewPiece, "new-piece", "", "Armor set name of the replacement piece (required)")
	for _, name := range []string{"name", "rank", "piece", "new-piece"} {
		_ = editCmd.MarkFlagRequired(name) // nolint:errcheck // safe to ignore in init
	}
}

func runEdit(cmd *cobra.Command, _ []string) error {
	rank, err := armor.ParseRank(editRank)
	if err != nil {
		return err
	}
	pieceType, err := armor.ParsePieceType(editPiece)
	if err != nil {
		return err
	}

	return withService(cmd.Context(), func(service builder.Service) error {
		out, err := service.EditSet(cmd.Context(), &builder.EditSetInput{
			Name:      editName,
			Rank:      rank,
			Type:      pieceType,
			PieceName: editNewPiece,
		})
		if err != nil {
			return err
		}

		previous := armor.EmptySlotName
		if out.Previous != nil {
			previous = out.Previous.Name()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Replaced %s %s with %s\n", previous, pieceType, editNewPiece)
		fmt.Fprintln(cmd.OutOrStdout(), render.Set(out.Set))
		return nil
	})
}
