package grid

import (
	"strings"

	"github.com/gridwing/gridwing/internal/ui/core"
	"github.com/gridwing/gridwing/internal/ui/dirty"
)

// DefaultZ is the paint order of a top-level or freshly detached grid.
const DefaultZ = -100

// Position is a cell coordinate inside a parent grid.
type Position struct {
	Row int
	Col int
}

// Grid is one rectangular character surface. It owns a cell buffer, a
// dirty tracker, its child grids, and the cursor and popup-menu
// sub-entities. Grids nest: a child's anchor and size define a
// rectangle in the parent's coordinate space, and overlapping floating
// children are resolved by paint order at hit-test time.
type Grid struct {
	id   int
	tree *Tree

	buf     *CellBuffer
	tracker *dirty.Tracker

	anchor   Position
	parent   *Grid // non-owning; cleared on detach
	children []*Grid

	z         int
	hidden    bool
	floating  bool
	external  bool
	focusable bool
	extWinID  int

	// Message-area placement state (MsgSetPos).
	msgScrolled bool
	msgSepChar  string

	cursor Cursor
	popup  PopupMenu
}

func newGrid(tree *Tree, id int) *Grid {
	g := &Grid{
		id:   id,
		tree: tree,
		buf:  NewCellBuffer(0, 0),
		z:    DefaultZ,
	}
	g.tracker = dirty.NewTracker(gridScan{g})
	g.tracker.OnCursorOverlap(g.cursorOverlap)
	g.cursor.Enabled = true
	g.cursor.ModeIndex = tree.modeIndex
	g.popup.Selected = -1
	return g
}

// gridScan adapts a Grid to the tracker's RowScanner.
type gridScan struct {
	g *Grid
}

func (s gridScan) Size() (rows, cols int) {
	size := s.g.buf.Size()
	return size.Rows, size.Cols
}

func (s gridScan) JoinsRight(row, col int) bool {
	cell := s.g.buf.Cell(row, col)
	if isLigatureGlyph(cell.Text) {
		return true
	}
	return s.g.tree.hl.IsItalic(cell.HlID)
}

// ligatureGlyphs are the symbol glyphs programming fonts commonly join
// into ligatures (arrows, comparisons, pipes, comment markers).
const ligatureGlyphs = "=<>!&|+-~^/*%:.?#_$@"

func isLigatureGlyph(text string) bool {
	if len(text) == 0 {
		return false
	}
	runes := []rune(text)
	return len(runes) == 1 && strings.ContainsRune(ligatureGlyphs, runes[0])
}

// ID returns the grid id.
func (g *Grid) ID() int {
	return g.id
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() core.GridSize {
	return g.buf.Size()
}

// Cell returns the cell at grid-local (row, col).
func (g *Grid) Cell(row, col int) core.Cell {
	return g.buf.Cell(row, col)
}

// Anchor returns the grid's top-left offset in its parent's
// coordinate space. Meaningless for a top-level grid.
func (g *Grid) Anchor() Position {
	return g.anchor
}

// Parent returns the containing grid, or nil for a top-level grid.
func (g *Grid) Parent() *Grid {
	return g.parent
}

// Children returns the child grids in insertion order.
func (g *Grid) Children() []*Grid {
	return g.children
}

// Z returns the paint order. Higher paints later.
func (g *Grid) Z() int {
	return g.z
}

// Hidden returns true if the grid is not painted.
func (g *Grid) Hidden() bool {
	return g.hidden
}

// SetHidden sets the hidden flag.
func (g *Grid) SetHidden(hidden bool) {
	g.hidden = hidden
}

// Floating returns true if the grid is a floating window.
func (g *Grid) Floating() bool {
	return g.floating
}

// SetFloating marks the grid as a floating window.
func (g *Grid) SetFloating(floating bool) {
	g.floating = floating
}

// SetZ overrides the paint order.
func (g *Grid) SetZ(z int) {
	g.z = z
}

// SetMsgPos records message-area placement state (scrolled indicator
// and separator character).
func (g *Grid) SetMsgPos(scrolled bool, sepChar string) {
	g.msgScrolled = scrolled
	g.msgSepChar = sepChar
}

// MsgScrolled returns true when the message area overlays scrolled
// content.
func (g *Grid) MsgScrolled() bool {
	return g.msgScrolled
}

// MsgSepChar returns the separator character drawn above the message
// area.
func (g *Grid) MsgSepChar() string {
	return g.msgSepChar
}

// External returns true if the grid is hosted as an independent
// top-level surface.
func (g *Grid) External() bool {
	return g.external
}

// ExtWinID returns the external window handle. Valid only when
// External is true.
func (g *Grid) ExtWinID() int {
	return g.extWinID
}

// Focusable returns true if pointer events may focus this grid.
func (g *Grid) Focusable() bool {
	return g.focusable
}

// Cursor returns a read-only snapshot of the cursor state.
func (g *Grid) Cursor() Cursor {
	return g.cursor
}

// PopupMenu returns a read-only snapshot of the popup-menu state.
func (g *Grid) PopupMenu() PopupMenu {
	return g.popup
}

// PixelSize returns the grid extent in device pixels under the
// current font metrics.
func (g *Grid) PixelSize() (width, height float64) {
	size := g.buf.Size()
	m := g.tree.metrics
	return m.PixelWidth(size.Cols), m.PixelHeight(size.Rows)
}

// Dirty returns true if the grid has pending damage.
func (g *Grid) Dirty() bool {
	return g.tracker.Dirty()
}

// NeedsFullRedraw returns true if the whole grid is invalid.
func (g *Grid) NeedsFullRedraw() bool {
	return g.tracker.All()
}

// DrawOps returns the pending draw operations in append order.
// The slice is valid until the next MarkClean.
func (g *Grid) DrawOps() []dirty.DrawOp {
	return g.tracker.Ops()
}

// MarkClean clears pending damage for this grid and every descendant.
// Called by the renderer once per frame after draining the logs.
func (g *Grid) MarkClean() {
	g.tracker.Clean()
	for _, child := range g.children {
		child.MarkClean()
	}
}

// MarkAllDirty invalidates this grid and every descendant. Theme and
// font changes funnel through here.
func (g *Grid) MarkAllDirty() {
	g.tracker.MarkAll()
	for _, child := range g.children {
		child.MarkAllDirty()
	}
}

// Resize reallocates the buffer. Preserved content keeps the
// overlapping top-left sub-rectangle. The whole grid is marked dirty
// regardless of whether the dimensions changed.
func (g *Grid) Resize(rows, cols int, preserve bool) {
	g.buf.Resize(rows, cols, preserve)
	g.tracker.MarkAll()
}

// WriteRow applies RLE cell runs to one row and records the damage.
func (g *Grid) WriteRow(row, colStart int, runs []CellRun) {
	region := g.buf.WriteRow(row, colStart, runs)
	g.tracker.MarkPut(region)
}

// cursorOverlap is the tracker hook: damage touched the cursor cell,
// so its visual attributes must be recomputed before the repaint.
func (g *Grid) cursorOverlap(row, colStart, colEnd int) {
	cur := &g.cursor
	if !cur.Focused || !cur.Enabled {
		return
	}
	if row == cur.Row && cur.Col >= colStart && cur.Col < colEnd {
		g.recomputeCursor()
	}
}
