package dirty

// RowScanner lets the tracker inspect grid content while widening a
// damaged span. Implemented by the grid node.
type RowScanner interface {
	// Size returns the grid dimensions in cells.
	Size() (rows, cols int)

	// JoinsRight reports whether the glyph at (row, col) may paint
	// into the cell to its right: a ligature-prone symbol glyph, or a
	// cell whose resolved highlight is italic.
	JoinsRight(row, col int) bool
}

// Tracker accumulates damage for one grid.
//
// All tracking operates per visual row: rectangles taller than one row
// are decomposed into single-row spans before the widening heuristics
// run. Incremental glyph rendering repaints only the nominal changed
// cells, but italic and ligature glyphs extend past cell boundaries;
// widening trades a few extra repainted cells for artifact-free output.
type Tracker struct {
	log  Log
	all  bool
	base bool
	scan RowScanner

	// cursorOverlap, when set, is invoked for each damaged row span
	// that intersects the cursor cell, before the span is widened.
	cursorOverlap func(row, colStart, colEnd int)
}

// NewTracker creates a tracker scanning rows through scan.
func NewTracker(scan RowScanner) *Tracker {
	return &Tracker{scan: scan}
}

// SetBase marks this tracker as belonging to the base/background grid
// in multi-grid mode. The base grid must not guess at damage owned by
// child grids, so span widening is disabled.
func (t *Tracker) SetBase(base bool) {
	t.base = base
}

// OnCursorOverlap registers a hook invoked when a damaged span
// intersects the cursor cell.
func (t *Tracker) OnCursorOverlap(fn func(row, colStart, colEnd int)) {
	t.cursorOverlap = fn
}

// MarkAll invalidates the whole grid.
func (t *Tracker) MarkAll() {
	t.all = true
}

// Dirty returns true if any damage is pending.
func (t *Tracker) Dirty() bool {
	return t.all || t.log.Len() > 0
}

// All returns true if the whole grid is invalid.
func (t *Tracker) All() bool {
	return t.all
}

// Ops returns the pending draw operations in append order.
func (t *Tracker) Ops() []DrawOp {
	return t.log.Ops()
}

// Clean empties the log and clears the whole-grid flag.
func (t *Tracker) Clean() {
	t.all = false
	t.log.Clear()
}

// MarkScroll appends a scroll hint to the log.
func (t *Tracker) MarkScroll(top, bot, left, right, rowDelta, colDelta int) {
	t.log.Scroll(top, bot, left, right, rowDelta, colDelta)
}

// MarkPut records cell damage for the given rectangle.
// Multi-row rectangles are decomposed into per-row spans.
func (t *Tracker) MarkPut(r Region) {
	rows, cols := t.scan.Size()
	r = r.Clamp(rows, cols)
	if r.Empty() {
		return
	}
	for row := r.Row; row < r.RowEnd(); row++ {
		t.markRow(row, r.Col, r.Width, cols)
	}
}

// markRow records damage for a single-row span, applying the
// artifact-avoidance widening unless this is the base grid.
func (t *Tracker) markRow(row, col, width, cols int) {
	if t.cursorOverlap != nil {
		t.cursorOverlap(row, col, col+width)
	}

	if !t.base {
		// One extra column to the right: glyphs slant or join past
		// their nominal boundary when an adjacent cell changes.
		if col+width < cols {
			width++
		}

		// Walk left over the joined run so the whole visually
		// connected range repaints, not just the changed cells.
		for col > 0 && t.scan.JoinsRight(row, col-1) {
			col--
			width++
		}
	}

	t.log.Put(Region{Row: row, Col: col, Height: 1, Width: width})
}
