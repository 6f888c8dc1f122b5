package render

import (
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth counts the characters of s that occupy a cell: escape
// sequences are removed and remaining control characters are not counted.
func VisibleWidth(s string) int {
	n := 0
	for _, r := range ansi.Strip(s) {
		if !unicode.IsControl(r) {
			n++
		}
	}
	return n
}

// SwatchPadding returns the left padding of the two swatch rows so both
// rows start in the same column.
//
// next is the width of the art line beside the first row and peek the width
// of the line beside the second. When there is no line for the second row
// it is padded to the final art line's width, so lastWidth stands in for
// peek. Without a line for the first row neither row is padded.
func SwatchPadding(next, peek int, nextOK, peekOK bool, lastWidth int) (int, int) {
	if !nextOK {
		return 0, 0
	}
	if !peekOK {
		peek = lastWidth
	}
	switch {
	case next > peek:
		return 0, next - peek
	case next < peek:
		return peek - next, 0
	default:
		return 0, 0
	}
}
