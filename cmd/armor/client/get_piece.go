package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

var (
	pieceRank string
	pieceType string
	pieceName string
)

var getPieceCmd = &cobra.Command{
	Use:   "get-piece",
	Short: "Look up one catalog piece",
	RunE:  runGetPiece,
}

func init() {
	getPieceCmd.Flags().StringVarP(&pieceRank, "rank", "r", "", "Rank: low, high or master (required)")
	getPieceCmd.Flags().StringVarP(&pieceType, "piece", "p", "", "Piece: head, chest, gloves, waist or legs (required)")
	getPieceCmd.Flags().StringVarP(&pieceName, "name", "n", "", "Armor set name (required)")
	for _, name := range []string{"rank", "piece", "name"} {
		_ = getPieceCmd.MarkFlagRequired(name) // nolint:errcheck // safe to ignore in init
	}
}

func runGetPiece(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createArmorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetPiece(ctx, &v1alpha1.GetPieceRequest{
		Rank: pieceRank,
		Type: pieceType,
		Name: pieceName,
	})
	if err != nil {
		return err
	}

	piece, err := armor.DeserializePiece(resp.Piece)
	if err != nil {
		return err
	}
	if piece == nil {
		return errors.NotFoundf("server returned no %s piece for %q", pieceType, pieceName)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Piece(piece))
	return nil
}
