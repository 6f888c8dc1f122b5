// Package ascii provides the ASCII art emblem printed beside the readout.
package ascii

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

//go:embed arch.txt
var archLogo string

// ErrEmptyLogo is returned when the embedded art has no lines.
var ErrEmptyLogo = errors.New("ascii: embedded logo is empty")

// Logo returns the Arch Linux emblem, one string per line.
//
// Parameters:
//   - style: lipgloss style applied to every line (usually a bold cyan)
//
// Returns:
//   - The styled lines, padded to a common visible width so the readout
//     starts in the same column on every line
//   - ErrEmptyLogo if the embedded art could not be read
func Logo(style lipgloss.Style) ([]string, error) {
	return Parse(archLogo, style)
}

// Parse splits raw art into padded, styled lines.
func Parse(raw string, style lipgloss.Style) ([]string, error) {
	raw = strings.TrimRight(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyLogo
	}

	lines := strings.Split(raw, "\n")
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(runewidth.FillRight(line, width))
	}
	return out, nil
}
