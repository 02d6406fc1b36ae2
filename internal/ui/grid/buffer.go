// Package grid implements the hierarchical grid model: cell buffers,
// the composition tree of nested and floating grids, cursor and
// popup-menu sub-entities, and the scroll engine.
package grid

import (
	"github.com/gridwing/gridwing/internal/ui/core"
	"github.com/gridwing/gridwing/internal/ui/dirty"
)

// CellRun is one run of a run-length-encoded row update. The decoder
// omits fields that repeat the previous run's: HlID < 0 carries the
// previous run's highlight id forward, Repeat <= 0 carries the
// previous run's repeat count (starting at 1).
type CellRun struct {
	HlID   int
	Text   string
	Repeat int
}

// CellBuffer is a rows x cols array of cells.
// Buffer dimensions always equal the reported size.
type CellBuffer struct {
	size  core.GridSize
	cells [][]core.Cell
}

// NewCellBuffer creates a buffer of empty cells.
func NewCellBuffer(rows, cols int) *CellBuffer {
	b := &CellBuffer{}
	b.allocate(rows, cols)
	return b
}

func (b *CellBuffer) allocate(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	b.size = core.GridSize{Rows: rows, Cols: cols}
	b.cells = make([][]core.Cell, rows)
	for r := 0; r < rows; r++ {
		b.cells[r] = make([]core.Cell, cols)
		for c := 0; c < cols; c++ {
			b.cells[r][c] = core.EmptyCell()
		}
	}
}

// Size returns the buffer dimensions.
func (b *CellBuffer) Size() core.GridSize {
	return b.size
}

// Cell returns the cell at (row, col), or the empty cell when the
// coordinates fall outside the buffer.
func (b *CellBuffer) Cell(row, col int) core.Cell {
	if row < 0 || row >= b.size.Rows || col < 0 || col >= b.size.Cols {
		return core.EmptyCell()
	}
	return b.cells[row][col]
}

// SetCell stores a cell at (row, col). Out-of-range writes are dropped.
func (b *CellBuffer) SetCell(row, col int, cell core.Cell) {
	if row < 0 || row >= b.size.Rows || col < 0 || col >= b.size.Cols {
		return
	}
	b.cells[row][col] = cell
}

// Resize reallocates the buffer to rows x cols. When preserve is set,
// the overlapping top-left sub-rectangle of the old content is copied
// over; otherwise the old content is discarded. Returns true if the
// dimensions changed.
func (b *CellBuffer) Resize(rows, cols int, preserve bool) bool {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	changed := rows != b.size.Rows || cols != b.size.Cols
	if !changed && preserve {
		return false
	}

	old := b.cells
	oldSize := b.size
	b.allocate(rows, cols)

	if preserve {
		copyRows := min(oldSize.Rows, rows)
		copyCols := min(oldSize.Cols, cols)
		for r := 0; r < copyRows; r++ {
			for c := 0; c < copyCols; c++ {
				b.cells[r][c] = old[r][c]
			}
		}
	}

	return changed
}

// WriteRow applies RLE runs to one row starting at colStart. Runs
// with HlID < 0 or Repeat <= 0 carry the previous run's value forward.
// Returns the region covering exactly the written span.
func (b *CellBuffer) WriteRow(row, colStart int, runs []CellRun) dirty.Region {
	if row < 0 || row >= b.size.Rows {
		return dirty.Region{}
	}

	col := colStart
	lastHl := 0
	lastRepeat := 1
	for _, run := range runs {
		hl := run.HlID
		if hl < 0 {
			hl = lastHl
		} else {
			lastHl = hl
		}

		repeat := run.Repeat
		if repeat <= 0 {
			repeat = lastRepeat
		} else {
			lastRepeat = repeat
		}

		for i := 0; i < repeat; i++ {
			if col >= 0 && col < b.size.Cols {
				b.cells[row][col] = core.Cell{HlID: hl, Text: run.Text}
			}
			col++
		}
	}

	return dirty.Region{Row: row, Col: colStart, Height: 1, Width: col - colStart}
}

// copyRow copies the inclusive [left, right] column span from row src
// to row dst with a single contiguous copy.
func (b *CellBuffer) copyRow(dst, src, left, right int) {
	copy(b.cells[dst][left:right+1], b.cells[src][left:right+1])
}
