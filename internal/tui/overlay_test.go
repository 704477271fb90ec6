package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestSkipColumnsStyledLine(t *testing.T) {
	line := "\x1b[31mAAAAAAAAAA\x1b[0mBBBBBBBBBB\x1b[32mCCCCCCCCCC\x1b[0m"
	require.Equal(t, "BBBBBBBBBBCCCCCCCCCC", ansi.Strip(skipColumns(line, 10)))
	require.Equal(t, "CCCCCCCCCC", ansi.Strip(skipColumns(line, 20)))
	require.Equal(t, line, skipColumns(line, 0))
}

func TestRenderPopupKeepsStyledBaseColumns(t *testing.T) {
	row := "\x1b[31m" + strings.Repeat("A", 20) + "\x1b[0m" + strings.Repeat("B", 20)
	base := strings.Repeat(row+"\n", 11) + row

	out := renderPopup(base, "X", 40, 12)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	var hit int
	for _, l := range lines {
		plain := ansi.Strip(l)
		require.Equal(t, 40, ansi.StringWidth(plain))
		if !strings.Contains(plain, "X") {
			continue
		}
		hit++
		start := strings.Index(plain, "│")
		end := strings.LastIndex(plain, "│") + len("│")
		require.Equal(t, strings.Repeat("A", start), plain[:start])
		require.NotContains(t, plain[end:], "A", "right side continues the base line, not its start")
		require.True(t, strings.HasSuffix(plain, "BB"))
	}
	require.Equal(t, 1, hit)
}
