package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/render"
	"github.com/KirkDiggler/armor-builder/internal/testutils"
	"github.com/KirkDiggler/armor-builder/internal/testutils/builders"
)

func TestLevelBar(t *testing.T) {
	testCases := []struct {
		name   string
		level  int
		filled int
	}{
		{name: "empty", level: 0, filled: 0},
		{name: "partial", level: 3, filled: 3},
		{name: "full", level: 5, filled: 5},
		{name: "clamped above max", level: 7, filled: 5},
		{name: "clamped below zero", level: -2, filled: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bar := render.LevelBar(tc.level)
			assert.Equal(t, tc.filled, strings.Count(bar, "▰"))
			assert.Equal(t, render.MaxLevel-tc.filled, strings.Count(bar, "▱"))
		})
	}
}

func TestSet(t *testing.T) {
	out := render.Set(testutils.CreateTestSet("Raid"))

	assert.Contains(t, out, "Raid")
	for _, name := range []string{"Piece 1", "Piece 2", "Piece 3", "Piece 4", "Piece 5"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "buff 1")
	assert.Contains(t, out, "buff 3")
	assert.Contains(t, out, "1 Slot")
	assert.Contains(t, out, "4 Slot")
	assert.NotContains(t, out, "No skills")
	assert.NotContains(t, out, "No slots")
}

func TestSetEmpty(t *testing.T) {
	out := render.Set(armor.NewSet("Bare"))

	assert.Contains(t, out, "No skills")
	assert.Contains(t, out, "No slots")
	for _, pieceType := range armor.SlotTypes() {
		assert.Contains(t, out, pieceType.String())
	}
}

func TestPiece(t *testing.T) {
	piece := builders.NewPieceBuilder(armor.PieceTypeArm).
		WithName("Rathalos").
		WithBonus("Attack Boost", 2).
		Build()

	out := render.Piece(piece)

	require.Contains(t, out, "Rathalos gloves (master rank)")
	assert.Contains(t, out, "Attack Boost")
	assert.Equal(t, 2, strings.Count(out, "▰"))
	assert.Contains(t, out, "No slots")
}

func TestList(t *testing.T) {
	out := render.List("Armor sets", []string{"Alpha", "Beta"})
	assert.Contains(t, out, "Armor sets")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")

	assert.Contains(t, render.List("Armor sets", nil), "None")
}
