package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup centers popup in a bordered card over base. Columns of base outside
// the card stay visible. Without a known size the popup is appended below.
func renderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base + "\n\n" + popup
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSuccess).
		Padding(1, 2).
		Render(popup)
	under := canvas(base, width, height)
	over := canvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)

	for i := range under {
		start, end, ok := inkSpan(over[i])
		if !ok {
			continue
		}
		left := ansi.Truncate(under[i], start, "")
		mid := ansi.Truncate(skipColumns(over[i], start), end-start, "")
		right := skipColumns(under[i], end)
		under[i] = fitWidth(left+mid+right, width)
	}
	return strings.Join(under, "\n")
}

// canvas splits s into exactly height lines of exactly width columns.
func canvas(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fitWidth(lines[i], width)
	}
	return lines
}

// inkSpan returns the column range holding non-blank cells.
func inkSpan(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	return lead, ansi.StringWidth(trimmed), true
}

// skipColumns drops the first cols display columns of s, keeping its styling.
func skipColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func fitWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
