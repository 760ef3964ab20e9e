package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/orchestrators/builder"
	"github.com/KirkDiggler/armor-builder/internal/render"
)

var (
	createName   string
	createRank   string
	createPieces = make(map[armor.PieceType]*string)
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an armor set from catalog pieces",
	Long: `Create a named armor set. Each piece flag names the armor set to take that piece from;
pieces left out stay empty.`,
	Example: `  armor create -r master -n "Crit build" --head Rathalos --chest Rathalos --legs Nergigante`,
	Args:    cobra.NoArgs,
	RunE:    runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Name for the armor set (required)")
	createCmd.Flags().StringVarP(&createRank, "rank", "r", "", "Rank of the pieces: low, high or master (required)")
	for _, t := range armor.SlotTypes() {
		createPieces[t] = createCmd.Flags().String(t.String(), "", fmt.Sprintf("Armor set name of the %s piece", t))
	}
	_ = createCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	_ = createCmd.MarkFlagRequired("rank") // nolint:errcheck // safe to ignore in init
}

func runCreate(cmd *cobra.Command, _ []string) error {
	rank, err := armor.ParseRank(createRank)
	if err != nil {
		return err
	}

	pieces := make(map[armor.PieceType]string, len(createPieces))
	for t, name := range createPieces {
		if *name != "" {
			pieces[t] = *name
		}
	}

	return withService(cmd.Context(), func(service builder.Service) error {
		out, err := service.CreateSet(cmd.Context(), &builder.CreateSetInput{
			Name:   createName,
			Rank:   rank,
			Pieces: pieces,
		})
		if err != nil {
			return err
		}

		for _, m := range out.Missing {
			fmt.Fprintf(cmd.ErrOrStderr(), "No %s rank %s piece named %q, slot left empty\n", rank, m.Type, m.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Set(out.Set))
		return nil
	})
}
