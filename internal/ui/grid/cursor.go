package grid

import (
	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/ui/core"
)

// CursorShape is the caret form drawn by the renderer.
type CursorShape uint8

const (
	// ShapeBlock fills the whole cell.
	ShapeBlock CursorShape = iota
	// ShapeHorizontal is an underline caret.
	ShapeHorizontal
	// ShapeVertical is a bar caret.
	ShapeVertical
)

// String returns the string representation of the shape.
func (s CursorShape) String() string {
	switch s {
	case ShapeBlock:
		return "block"
	case ShapeHorizontal:
		return "horizontal"
	case ShapeVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ModeInfo describes cursor appearance for one editor mode.
type ModeInfo struct {
	Name           string
	Shape          CursorShape
	CellPercentage int
	BlinkWait      int
	BlinkOn        int
	BlinkOff       int
	AttrID         int
}

// Cursor is the cursor state of one grid. Position is grid-local;
// ScreenX/ScreenY are the derived screen-space origin in device
// pixels. Visual attributes are recomputed whenever the underlying
// cell, mode, theme, or font changes.
type Cursor struct {
	Row int
	Col int

	ModeIndex int
	Focused   bool
	Enabled   bool

	Fg      core.Color
	Bg      core.Color
	Special core.Color
	Attrs   core.Attribute

	Shape          CursorShape
	CellPercentage int
	BlinkWait      int
	BlinkOn        int
	BlinkOff       int

	// Width is the caret width in device units: the glyph width under
	// the cursor times the cell advance.
	Width float64

	ScreenX float64
	ScreenY float64
}

// cursorGoto places the cursor. The protocol names a concrete grid;
// if that grid is not this one, the position is re-expressed in the
// parent's coordinates and forwarded upward, so every ancestor on the
// path keeps screen-position bookkeeping while focus lands on the
// named grid.
func (g *Grid) cursorGoto(targetID, row, col int) {
	if g.id == targetID {
		g.cursor.Focused = true
		g.cursor.Row = row
		g.cursor.Col = col
		g.recomputeCursor()
	} else {
		// Ancestor bookkeeping: track where the caret sits in this
		// grid's coordinates without taking focus.
		g.cursor.Row = row
		g.cursor.Col = col
	}

	if g.parent != nil {
		g.parent.cursorGoto(targetID, row+g.anchor.Row, col+g.anchor.Col)
	}
}

// recomputeCursor re-derives the cursor's visual attributes from the
// cell under it, the current mode, and the highlight table.
func (g *Grid) recomputeCursor() {
	cur := &g.cursor
	mode := g.tree.mode(cur.ModeIndex)

	target, lr, lc := g.FindTargetGrid(cur.Row, cur.Col)
	cell := target.Cell(lr, lc)

	id := cell.HlID
	if mode.AttrID > 0 {
		id = mode.AttrID
	}

	res := g.tree.hl.Resolve(id)
	if id == highlight.DefaultID {
		// The default colors make an invisible block cursor; reverse
		// video keeps the glyph legible under it.
		res.Fg, res.Bg = res.Bg, res.Fg
	}

	cur.Fg = res.Fg
	cur.Bg = res.Bg
	cur.Special = res.Special
	cur.Attrs = res.Attrs

	cur.Shape = mode.Shape
	cur.CellPercentage = mode.CellPercentage
	cur.BlinkWait = mode.BlinkWait
	cur.BlinkOn = mode.BlinkOn
	cur.BlinkOff = mode.BlinkOff

	m := g.tree.metrics
	glyphCells := core.TextWidth(cell.Text)
	if glyphCells < 1 {
		glyphCells = 1
	}
	cur.Width = m.PixelWidth(glyphCells)

	ar, ac := g.AbsoluteAnchor()
	cur.ScreenX = m.PixelWidth(ac + cur.Col)
	cur.ScreenY = m.PixelHeight(ar + cur.Row)
}
