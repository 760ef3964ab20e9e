// Package output writes armor set comparisons to spreadsheet files
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

const sheetName = "Comparison"

// ExportSetsXLSX writes one row per set: the five piece names, the four socket
// sizes, then one column per bonus name holding the aggregated level
func ExportSetsXLSX(path string, sets []*armor.Set) error {
	if path == "" {
		return errors.InvalidArgument("output path is required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	bonusNames := bonusUnion(sets)

	headers := []string{"Set"}
	for _, t := range armor.SlotTypes() {
		headers = append(headers, t.String())
	}
	for i := 1; i <= armor.SocketSizes; i++ {
		headers = append(headers, fmt.Sprintf("%d Slot", i))
	}
	headers = append(headers, bonusNames...)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	for i, h := range headers {
		if err := f.SetCellValue(sheetName, cellName(i, 1), h); err != nil {
			return errors.Wrap(err, "failed to write header")
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}
	lastCol := colName(len(headers) - 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return errors.Wrap(err, "failed to style header")
	}

	for r, set := range sets {
		row := r + 2
		values := make([]interface{}, 0, len(headers))
		values = append(values, set.Name)
		for _, sn := range set.PieceNames() {
			values = append(values, sn.Name)
		}
		for _, count := range set.AggregateSockets() {
			values = append(values, count)
		}
		bonuses := set.AggregateBonuses()
		for _, name := range bonusNames {
			values = append(values, bonuses[name])
		}
		if err := f.SetSheetRow(sheetName, cellName(0, row), &values); err != nil {
			return errors.Wrapf(err, "failed to write row for set %q", set.Name)
		}
	}

	if err := f.SetColWidth(sheetName, "A", lastCol, 16); err != nil {
		return errors.Wrap(err, "failed to size columns")
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return errors.Wrap(err, "failed to freeze header")
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

// bonusUnion returns every bonus name carried by any set, sorted
func bonusUnion(sets []*armor.Set) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for name := range set.AggregateBonuses() {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// colName converts a zero-based column index to its spreadsheet letters (0 -> A, 26 -> AA)
func colName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}
