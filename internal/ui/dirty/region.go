// Package dirty tracks damaged screen regions for incremental rendering.
// It maintains an ordered log of draw operations (cell repaints and
// scrolls) and owns the heuristics that widen damaged spans so glyphs
// that paint past their nominal cell boundary never leave artifacts.
package dirty

// Region is an axis-aligned rectangle of grid cells.
type Region struct {
	// Row is the first row of the region (inclusive).
	Row int

	// Col is the first column of the region (inclusive).
	Col int

	// Height is the number of rows covered.
	Height int

	// Width is the number of columns covered.
	Width int
}

// NewRegion creates a region from an origin and extent.
func NewRegion(row, col, height, width int) Region {
	return Region{Row: row, Col: col, Height: height, Width: width}
}

// RowEnd returns the exclusive end row.
func (r Region) RowEnd() int {
	return r.Row + r.Height
}

// ColEnd returns the exclusive end column.
func (r Region) ColEnd() int {
	return r.Col + r.Width
}

// Empty returns true if the region covers no cells.
func (r Region) Empty() bool {
	return r.Height <= 0 || r.Width <= 0
}

// Contains returns true if other lies fully inside r.
func (r Region) Contains(other Region) bool {
	return other.Row >= r.Row &&
		other.Col >= r.Col &&
		other.RowEnd() <= r.RowEnd() &&
		other.ColEnd() <= r.ColEnd()
}

// ContainsPoint returns true if the cell at (row, col) lies inside r.
func (r Region) ContainsPoint(row, col int) bool {
	return row >= r.Row && row < r.RowEnd() &&
		col >= r.Col && col < r.ColEnd()
}

// Disjoint returns true if r and other share no cells.
func (r Region) Disjoint(other Region) bool {
	return r.RowEnd() <= other.Row || other.RowEnd() <= r.Row ||
		r.ColEnd() <= other.Col || other.ColEnd() <= r.Col
}

// Intersects returns true if r and other share at least one cell.
func (r Region) Intersects(other Region) bool {
	return !r.Disjoint(other)
}

// Clamp returns r limited to a rows x cols grid.
func (r Region) Clamp(rows, cols int) Region {
	out := r
	if out.Row < 0 {
		out.Height += out.Row
		out.Row = 0
	}
	if out.Col < 0 {
		out.Width += out.Col
		out.Col = 0
	}
	if out.RowEnd() > rows {
		out.Height = rows - out.Row
	}
	if out.ColEnd() > cols {
		out.Width = cols - out.Col
	}
	if out.Height < 0 {
		out.Height = 0
	}
	if out.Width < 0 {
		out.Width = 0
	}
	return out
}

// Equals returns true if two regions are identical.
func (r Region) Equals(other Region) bool {
	return r == other
}
