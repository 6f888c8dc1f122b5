package ascii

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	lines, err := Logo(lipgloss.NewStyle())
	require.NoError(t, err)
	require.Len(t, lines, 19)

	width := runewidth.StringWidth(ansi.Strip(lines[0]))
	for i, line := range lines {
		assert.Equal(t, width, runewidth.StringWidth(ansi.Strip(line)), "line %d width", i)
	}
	assert.Contains(t, ansi.Strip(lines[1]), ".o+`")
}

func TestParse_PadsToWidestLine(t *testing.T) {
	lines, err := Parse("ab\nabcd\r\nx\n\n", lipgloss.NewStyle())
	require.NoError(t, err)
	stripped := make([]string, len(lines))
	for i, l := range lines {
		stripped[i] = ansi.Strip(l)
	}
	assert.Equal(t, []string{"ab  ", "abcd", "x   "}, stripped)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("\n\n", lipgloss.NewStyle())
	assert.ErrorIs(t, err, ErrEmptyLogo)
}
