package render

// Cursor walks the art lines once, front to back. It is the only mutable
// state shared by the row and swatch phases and is never rewound.
type Cursor struct {
	lines     []string
	pos       int
	advances  int
	lastWidth int
}

// NewCursor starts a cursor at the first art line.
func NewCursor(lines []string) *Cursor {
	c := &Cursor{lines: lines}
	if len(lines) > 0 {
		c.lastWidth = VisibleWidth(lines[len(lines)-1])
	}
	return c
}

// Next consumes one line. Every call counts as an advance, including calls
// after the art is exhausted.
func (c *Cursor) Next() (string, bool) {
	c.advances++
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// Peek returns the line Next would return without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// Advances is the number of Next calls so far.
func (c *Cursor) Advances() int { return c.advances }

// LastWidth is the visible width of the final art line, used to pad once
// the art runs out.
func (c *Cursor) LastWidth() int { return c.lastWidth }
