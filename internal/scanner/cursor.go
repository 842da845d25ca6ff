package scanner

// Mark is a saved cursor position.
type Mark int

// Cursor is a read position over a slice of lines.
// It supports one-line look-ahead and rewinding to a saved Mark.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor creates a cursor positioned before the first line.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Next returns the next line and advances. ok is false at end of input.
func (c *Cursor) Next() (line string, ok bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line = c.lines[c.pos]
	c.pos++
	return line, true
}

// peek returns the next line without advancing.
func (c *Cursor) peek() (line string, ok bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// Mark returns the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.pos)
}

// Reset moves the cursor back (or forward) to m.
func (c *Cursor) Reset(m Mark) {
	switch {
	case int(m) < 0:
		c.pos = 0
	case int(m) > len(c.lines):
		c.pos = len(c.lines)
	default:
		c.pos = int(m)
	}
}

// Line returns the number of lines consumed so far, which is the 1-based
// number of the line last returned by Next.
func (c *Cursor) Line() int {
	return c.pos
}

// EOF reports whether every line has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.lines)
}

// Len returns the total number of lines.
func (c *Cursor) Len() int {
	return len(c.lines)
}
