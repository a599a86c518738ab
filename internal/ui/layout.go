package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth is the width views lay out to; DefaultCardWidth before the
// first WindowSizeMsg.
func contentWidth(h Host) int {
	w, _ := h.BodySize()
	if w <= 0 {
		return DefaultCardWidth
	}
	return w
}

// renderIntro is the title and lead paragraph at the top of each tab.
func renderIntro(t Theme, title, lead string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(title),
		t.Subtitle.Width(width).Render(lead),
		"",
	)
}

// renderFallback is shown by tabs that need a selection when there is none.
func renderFallback(t Theme, title, text, action string, width int) string {
	return t.Card.Width(width-2).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			t.Heading.Render(title),
			t.Muted.Render(text),
			"",
			t.ButtonPrimary.Render(action),
		),
	)
}

// renderColumns lays pre-sized cells out in rows of cols.
func renderColumns(cells []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cells[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// columnsFor picks how many cards of at least minWidth fit across width.
func columnsFor(width, minWidth, maxCols int) int {
	cols := (width + 1) / (minWidth + 1)
	return max(1, min(cols, maxCols))
}

// columnWidth splits width into cols cells separated by one space.
func columnWidth(width, cols int) int {
	return (width - (cols - 1)) / cols
}

// lineCount is the number of terminal lines s occupies.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
