// Package render prints a report beside the ASCII art, one art line per
// output line, and closes with the 16-colour swatch block.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lxfetch/report"
)

// Gap is the number of spaces between the art column and the text.
const Gap = 5

// swatch is one colour block.
const swatch = "   "

// Renderer writes a report next to art. It is single use: the art cursor
// is consumed by Render.
type Renderer struct {
	out    io.Writer
	err    error
	cursor *Cursor

	label    lipgloss.Style
	swatches [16]string
}

// New returns a Renderer writing to w. Colours follow the terminal profile
// lipgloss detects for w.
func New(w io.Writer, art []string) *Renderer {
	lr := lipgloss.NewRenderer(w)
	r := &Renderer{
		out:    w,
		cursor: NewCursor(art),
		label:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
	for i := range r.swatches {
		r.swatches[i] = lr.NewStyle().Background(lipgloss.Color(strconv.Itoa(i))).Render(swatch)
	}
	return r
}

// Cursor exposes the art cursor.
func (r *Renderer) Cursor() *Cursor { return r.cursor }

// Render prints the greeting, the rows, the swatch block and whatever art
// is left. It fails only when the output cannot be written.
func (r *Renderer) Render(rep *report.Report) error {
	r.Greeting(rep)
	r.Rows(rep)
	r.Swatches()
	r.Drain()
	r.println("")
	if r.err != nil {
		return fmt.Errorf("write output: %w", r.err)
	}
	return nil
}

// Greeting prints user@host and its underline when both are known.
func (r *Renderer) Greeting(rep *report.Report) {
	g, ok := rep.Greeting.Get()
	if !ok {
		return
	}
	art, _ := r.nextArt()
	r.println(art + r.label.Render(g.User) + "@" + r.label.Render(g.Host))
	art, _ = r.nextArt()
	r.println(art + strings.Repeat("-", runewidth.StringWidth(g.String())))
}

// Rows advances the art cursor once per row. A row without a value still
// consumes its art line so later rows stay on the lines they belong to.
func (r *Renderer) Rows(rep *report.Report) {
	width := rep.LabelWidth()
	for _, row := range rep.Rows {
		art, _ := r.nextArt()
		value, ok := row.Value.Get()
		if !ok {
			continue
		}
		pad := strings.Repeat(" ", width-len(row.Label))
		r.println(art + r.label.Render(row.Label) + ": " + pad + value)
	}
}

// Swatches prints a spacer line and the two rows of eight colours. The
// rows are padded so they line up even when the art lines beside them have
// different widths.
func (r *Renderer) Swatches() {
	spacer, _ := r.nextArt()
	r.println(spacer)

	first, next, nextOK := r.nextArtWidth()
	var peek int
	peekLine, peekOK := r.cursor.Peek()
	if peekOK {
		peek = VisibleWidth(peekLine)
	}
	pad1, pad2 := SwatchPadding(next, peek, nextOK, peekOK, r.cursor.LastWidth())

	r.println(first + strings.Repeat(" ", pad1) + strings.Join(r.swatches[:8], ""))
	second, _ := r.nextArt()
	r.println(second + strings.Repeat(" ", pad2) + strings.Join(r.swatches[8:], ""))
}

// Drain prints the remaining art lines without text.
func (r *Renderer) Drain() {
	for {
		line, ok := r.cursor.Next()
		if !ok {
			return
		}
		r.println(line)
	}
}

// nextArt consumes one art line and returns the art column: the line, or
// blank padding of the final line's width once the art is exhausted,
// followed by the gap.
func (r *Renderer) nextArt() (string, bool) {
	col, _, ok := r.nextArtWidth()
	return col, ok
}

func (r *Renderer) nextArtWidth() (string, int, bool) {
	gap := strings.Repeat(" ", Gap)
	line, ok := r.cursor.Next()
	if !ok {
		return strings.Repeat(" ", r.cursor.LastWidth()) + gap, 0, false
	}
	return line + gap, VisibleWidth(line), true
}

func (r *Renderer) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, s+"\n")
}
