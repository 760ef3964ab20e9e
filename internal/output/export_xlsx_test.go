package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/testutils"
	"github.com/KirkDiggler/armor-builder/internal/testutils/builders"
)

func TestColName(t *testing.T) {
	testCases := map[int]string{
		0:   "A",
		9:   "J",
		25:  "Z",
		26:  "AA",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for in, want := range testCases {
		assert.Equal(t, want, colName(in), "column %d", in)
	}
}

func TestExportSetsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "compare.xlsx")

	other := builders.NewSetBuilder("Crit").
		WithPiece(builders.NewPieceBuilder(armor.PieceTypeHead).
			WithName("Kulu-Ya-Ku").
			WithBonus("Attack Boost", 1).
			WithSockets(1, 0, 0, 0).
			Build()).
		Build()

	require.NoError(t, ExportSetsXLSX(path, []*armor.Set{testutils.CreateTestSet("Raid"), other}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Set", "head", "chest", "gloves", "waist", "legs",
		"1 Slot", "2 Slot", "3 Slot", "4 Slot",
		"Attack Boost", "buff 1", "buff 2", "buff 3",
	}, rows[0])
	assert.Equal(t, []string{
		"Raid", "Piece 1", "Piece 2", "Piece 3", "Piece 4", "Piece 5",
		"4", "1", "3", "1",
		"0", "4", "1", "3",
	}, rows[1])
	assert.Equal(t, []string{
		"Crit", "Kulu-Ya-Ku", "-", "-", "-", "-",
		"1", "0", "0", "0",
		"1", "0", "0", "0",
	}, rows[2])
}

func TestExportSetsXLSXNoSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ExportSetsXLSX(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 1+5+armor.SocketSizes)
}

func TestExportSetsXLSXRequiresPath(t *testing.T) {
	err := ExportSetsXLSX("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
