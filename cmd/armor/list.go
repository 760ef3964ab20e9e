package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

const (
	listSet       = "set"
	listPiece     = "piece"
	listAllPieces = "all-pieces"
	listAllSets   = "all-sets"

	allPieces = "all"
)

var (
	listName      string
	listRank      string
	listPieceType string
)

var listCmd = &cobra.Command{
	Use:   "list {set|piece|all-pieces|all-sets}",
	Short: "Show stored sets and catalog pieces",
	Long: `Show stored sets and catalog pieces.

  set         one stored set (-n)
  piece       catalog pieces of one armor set (-n, -r, -p; -p all shows every piece)
  all-pieces  armor set names in the catalog for a rank (-r)
  all-sets    every stored set`,
	ValidArgs: []string{listSet, listPiece, listAllPieces, listAllSets},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVarP(&listName, "name", "n", "", "Name of the set or armor set")
	listCmd.Flags().StringVarP(&listRank, "rank", "r", "", "Rank: low, high or master")
	listCmd.Flags().StringVarP(&listPieceType, "piece", "p", allPieces, "Piece: head, chest, gloves, waist, legs or all")
}

func runList(cmd *cobra.Command, args []string) error {
	return withService(cmd.Context(), func(service builder.Service) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case listSet:
			return listOneSet(cmd, service, w)
		case listPiece:
			return listPieces(cmd, service, w)
		case listAllPieces:
			return listPieceNames(cmd, service, w)
		default:
			return listAllStoredSets(cmd, service, w)
		}
	})
}

func listOneSet(cmd *cobra.Command, service builder.Service, w io.Writer) error {
	if listName == "" {
		return errors.InvalidArgument("--name is required to list a set")
	}
	out, err := service.GetSet(cmd.Context(), &builder.GetSetInput{Name: listName})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, render.Set(out.Set))
	return nil
}

func listPieces(cmd *cobra.Command, service builder.Service, w io.Writer) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", listName, vb)
	errors.ValidateRequired("rank", listRank, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	rank, err := armor.ParseRank(listRank)
	if err != nil {
		return err
	}

	if listPieceType == allPieces {
		out, err := service.ListPieces(cmd.Context(), &builder.ListPiecesInput{Rank: rank, Name: listName})
		if err != nil {
			return err
		}
		for _, piece := range out.Pieces {
			fmt.Fprintln(w, render.Piece(piece))
		}
		return nil
	}

	pieceType, err := armor.ParsePieceType(listPieceType)
	if err != nil {
		return err
	}
	out, err := service.GetPiece(cmd.Context(), &builder.GetPieceInput{Rank: rank, Type: pieceType, Name: listName})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, render.Piece(out.Piece))
	return nil
}

func listPieceNames(cmd *cobra.Command, service builder.Service, w io.Writer) error {
	if listRank == "" {
		return errors.InvalidArgument("--rank is required to list armor names")
	}
	rank, err := armor.ParseRank(listRank)
	if err != nil {
		return err
	}
	out, err := service.ListPieceNames(cmd.Context(), &builder.ListPieceNamesInput{Rank: rank})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, render.List(fmt.Sprintf("%s rank armor", rank), out.Names))
	return nil
}

func listAllStoredSets(cmd *cobra.Command, service builder.Service, w io.Writer) error {
	out, err := service.ListSets(cmd.Context(), &builder.ListSetsInput{})
	if err != nil {
		return err
	}
	if len(out.Sets) == 0 {
		fmt.Fprintln(w, render.List("Armor sets", nil))
		return nil
	}
	for _, set := range out.Sets {
		fmt.Fprintln(w, render.Set(set))
	}
	return nil
}
