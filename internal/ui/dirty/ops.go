package dirty

// OpKind discriminates draw operations in the log.
type OpKind uint8

const (
	// OpPut repaints the cells inside Rect from the grid buffer.
	OpPut OpKind = iota

	// OpScroll hints that the renderer may blit the scroll region
	// instead of repainting it.
	OpScroll
)

// String returns the string representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpPut:
		return "put"
	case OpScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// DrawOp is one entry in the ordered draw-op log.
// Rect is valid for OpPut; the scroll fields are valid for OpScroll.
type DrawOp struct {
	Kind OpKind

	// Rect is the damaged rectangle for OpPut.
	Rect Region

	// Scroll region bounds, inclusive rows and columns.
	Top, Bot, Left, Right int

	// RowDelta is positive when content moved up.
	RowDelta int

	// ColDelta is reserved and always zero in the supported protocol.
	ColDelta int
}

// Log is the ordered draw-operation log for one grid.
// It is single-writer/single-reader: the grid appends, the renderer
// drains once per frame. Clearing keeps capacity so steady-state
// frames do not allocate.
type Log struct {
	ops []DrawOp
}

// Put appends a repaint operation for the given region.
func (l *Log) Put(r Region) {
	if r.Empty() {
		return
	}
	l.ops = append(l.ops, DrawOp{Kind: OpPut, Rect: r})
}

// Scroll appends a scroll hint for the given region and deltas.
func (l *Log) Scroll(top, bot, left, right, rowDelta, colDelta int) {
	l.ops = append(l.ops, DrawOp{
		Kind:     OpScroll,
		Top:      top,
		Bot:      bot,
		Left:     left,
		Right:    right,
		RowDelta: rowDelta,
		ColDelta: colDelta,
	})
}

// Ops returns the logged operations in append order.
// The returned slice is owned by the log and valid until Clear.
func (l *Log) Ops() []DrawOp {
	return l.ops
}

// Len returns the number of pending operations.
func (l *Log) Len() int {
	return len(l.ops)
}

// Clear empties the log, keeping the underlying capacity.
func (l *Log) Clear() {
	l.ops = l.ops[:0]
}
