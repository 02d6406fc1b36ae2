package grid

import (
	"github.com/gridwing/gridwing/internal/ui/dirty"
)

// Scroll shifts the content of the inclusive region [top, bot] x
// [left, right] by rowDelta rows, copying in place.
//
// A positive rowDelta moves visible content up (scrolling down through
// a document): rows [top+rowDelta, bot] are copied to
// [top, bot-rowDelta], in ascending order so every source row is read
// before a write could overwrite it. A negative rowDelta moves content
// down, copied in descending order for the same reason. Each row moves
// its [left, right] span with one contiguous copy.
//
// colDelta is reserved in the supported protocol and ignored.
//
// The rows vacated by the shift are not cleared; their content only
// changes when later writes arrive. A Scroll op is always appended so
// the renderer may blit instead of repainting.
func (g *Grid) Scroll(top, bot, left, right, rowDelta, colDelta int) {
	size := g.buf.Size()

	if top < 0 {
		top = 0
	}
	if bot > size.Rows-1 {
		bot = size.Rows - 1
	}
	if left < 0 {
		left = 0
	}
	if right > size.Cols-1 {
		right = size.Cols - 1
	}
	if top > bot || left > right {
		return
	}

	switch {
	case rowDelta > 0:
		for y := top + rowDelta; y <= bot; y++ {
			g.buf.copyRow(y-rowDelta, y, left, right)
		}
	case rowDelta < 0:
		for y := bot + rowDelta; y >= top; y-- {
			g.buf.copyRow(y-rowDelta, y, left, right)
		}
	}

	g.tracker.MarkScroll(top, bot, left, right, rowDelta, colDelta)

	// The grid moved under the cursor, not the cursor itself; only its
	// visual attributes can be stale. Recomputed from the post-scroll
	// buffer.
	cur := &g.cursor
	if cur.Enabled && cur.Focused {
		region := dirty.Region{
			Row:    top,
			Col:    left,
			Height: bot - top + 1,
			Width:  right - left + 1,
		}
		if region.ContainsPoint(cur.Row, cur.Col) {
			g.recomputeCursor()
		}
	}
}
