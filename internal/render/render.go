// Package render draws armor sets and pieces as terminal panels
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
)

// MaxLevel is the number of cells in a level bar
const MaxLevel = 5

const (
	levelFilled    = "▰"
	levelNotFilled = "▱"
	noValue        = "-"
)

var (
	accent = lipgloss.Color("#2196F3")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().PaddingRight(2)
	valueStyle  = lipgloss.NewStyle().Foreground(accent)
	filledStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
)

// LevelBar draws level filled cells out of MaxLevel; level is clamped to 0..MaxLevel
func LevelBar(level int) string {
	level = max(0, min(level, MaxLevel))
	return filledStyle.Render(strings.Repeat(levelFilled, level)) +
		valueStyle.Render(strings.Repeat(levelNotFilled, MaxLevel-level))
}

// Set draws the piece, skill and decoration slot panels of a set side by side
func Set(set *armor.Set) string {
	pieces := make([][2]string, 0, 5)
	for _, sn := range set.PieceNames() {
		pieces = append(pieces, [2]string{sn.Type.String(), sn.Name})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(set.Name),
		lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Pieces", pieces),
			skillsPanel(set.AggregateBonuses()),
			slotsPanel(set.AggregateSockets()),
		),
	)
}

// Piece draws the skill and decoration slot panels of a piece side by side
func Piece(piece *armor.Piece) string {
	title := fmt.Sprintf("%s %s (%s rank)", piece.Name(), piece.Type(), piece.Rank())
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top,
			skillsPanel(piece.Bonuses()),
			slotsPanel(piece.Sockets()),
		),
	)
}

// List draws a titled panel with one name per row
func List(title string, names []string) string {
	rows := make([][2]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, [2]string{name, ""})
	}
	if len(rows) == 0 {
		rows = append(rows, [2]string{"None", noValue})
	}
	return panel(title, rows)
}

func skillsPanel(bonuses armor.BonusMap) string {
	rows := make([][2]string, 0, len(bonuses))
	for _, name := range bonuses.Names() {
		rows = append(rows, [2]string{name, LevelBar(bonuses[name])})
	}
	if len(rows) == 0 {
		rows = append(rows, [2]string{"No skills", noValue})
	}
	return panel("Skills", rows)
}

func slotsPanel(sockets armor.SocketProfile) string {
	var rows [][2]string
	for i, count := range sockets {
		if count == 0 {
			continue
		}
		rows = append(rows, [2]string{fmt.Sprintf("%d Slot", i+1), fmt.Sprint(count)})
	}
	if len(rows) == 0 {
		rows = append(rows, [2]string{"No slots", noValue})
	}
	return panel("Decoration slots", rows)
}

// panel renders label/value rows with the labels padded to a common width
func panel(title string, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, row := range rows {
		label := labelStyle.Width(width + 2).Render(row[0])
		if row[1] == "" {
			lines = append(lines, row[0])
			continue
		}
		lines = append(lines, label+valueStyle.Render(row[1]))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
