package dirty

import (
	"testing"
)

// fakeScanner is a RowScanner over a fixed-size grid with an explicit
// set of cells that join into their right neighbor.
type fakeScanner struct {
	rows, cols int
	joins      map[[2]int]bool
}

func (s *fakeScanner) Size() (int, int) { return s.rows, s.cols }

func (s *fakeScanner) JoinsRight(row, col int) bool {
	return s.joins[[2]int{row, col}]
}

func newScanner(rows, cols int) *fakeScanner {
	return &fakeScanner{rows: rows, cols: cols, joins: make(map[[2]int]bool)}
}

func TestTrackerWidensSpanRight(t *testing.T) {
	tr := NewTracker(newScanner(10, 20))

	tr.MarkPut(Region{Row: 3, Col: 5, Height: 1, Width: 4})

	ops := tr.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	// Right extension by one column.
	want := Region{Row: 3, Col: 5, Height: 1, Width: 5}
	if ops[0].Rect != want {
		t.Errorf("widened span = %+v, want %+v", ops[0].Rect, want)
	}
}

func TestTrackerWidenCappedAtGridEdge(t *testing.T) {
	tr := NewTracker(newScanner(10, 20))

	tr.MarkPut(Region{Row: 0, Col: 16, Height: 1, Width: 4})

	ops := tr.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if ops[0].Rect.ColEnd() > 20 {
		t.Errorf("span extends past grid edge: %+v", ops[0].Rect)
	}
	if ops[0].Rect.Width != 4 {
		t.Errorf("flush-right span should not widen, got width %d", ops[0].Rect.Width)
	}
}

func TestTrackerDecomposesRows(t *testing.T) {
	tr := NewTracker(newScanner(10, 20))

	tr.MarkPut(Region{Row: 2, Col: 0, Height: 3, Width: 10})

	ops := tr.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 per-row ops, got %d", len(ops))
	}
	for i, op := range ops {
		if op.Kind != OpPut {
			t.Errorf("op %d kind = %v, want put", i, op.Kind)
		}
		if op.Rect.Height != 1 {
			t.Errorf("op %d height = %d, want 1", i, op.Rect.Height)
		}
		if op.Rect.Row != 2+i {
			t.Errorf("op %d row = %d, want %d", i, op.Rect.Row, 2+i)
		}
	}
}

func TestTrackerBackwardScan(t *testing.T) {
	scan := newScanner(10, 20)
	// Cells 2..4 on row 1 join rightward; damage starting at col 5
	// must pull the whole connected run in.
	scan.joins[[2]int{1, 2}] = true
	scan.joins[[2]int{1, 3}] = true
	scan.joins[[2]int{1, 4}] = true
	tr := NewTracker(scan)

	tr.MarkPut(Region{Row: 1, Col: 5, Height: 1, Width: 2})

	ops := tr.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	want := Region{Row: 1, Col: 2, Height: 1, Width: 6}
	if ops[0].Rect != want {
		t.Errorf("span = %+v, want %+v", ops[0].Rect, want)
	}
}

func TestTrackerBaseSkipsWidening(t *testing.T) {
	scan := newScanner(10, 20)
	scan.joins[[2]int{0, 4}] = true
	tr := NewTracker(scan)
	tr.SetBase(true)

	tr.MarkPut(Region{Row: 0, Col: 5, Height: 1, Width: 3})

	ops := tr.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	want := Region{Row: 0, Col: 5, Height: 1, Width: 3}
	if ops[0].Rect != want {
		t.Errorf("base grid span = %+v, want unwidened %+v", ops[0].Rect, want)
	}
}

func TestTrackerClampsOutOfBounds(t *testing.T) {
	tr := NewTracker(newScanner(5, 5))

	tr.MarkPut(Region{Row: 4, Col: 3, Height: 3, Width: 10})

	ops := tr.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected 1 clamped op, got %d", len(ops))
	}
	if ops[0].Rect.RowEnd() > 5 || ops[0].Rect.ColEnd() > 5 {
		t.Errorf("op exceeds grid bounds: %+v", ops[0].Rect)
	}

	tr.Clean()
	tr.MarkPut(Region{Row: 10, Col: 10, Height: 2, Width: 2})
	if tr.Dirty() {
		t.Error("fully out-of-bounds damage should be dropped")
	}
}

func TestTrackerCursorOverlapHook(t *testing.T) {
	tr := NewTracker(newScanner(10, 20))

	var calls [][3]int
	tr.OnCursorOverlap(func(row, colStart, colEnd int) {
		calls = append(calls, [3]int{row, colStart, colEnd})
	})

	tr.MarkPut(Region{Row: 4, Col: 2, Height: 2, Width: 3})

	if len(calls) != 2 {
		t.Fatalf("hook called %d times, want 2", len(calls))
	}
	// The hook sees the nominal span, before widening.
	if calls[0] != [3]int{4, 2, 5} {
		t.Errorf("call 0 = %v, want {4 2 5}", calls[0])
	}
	if calls[1] != [3]int{5, 2, 5} {
		t.Errorf("call 1 = %v, want {5 2 5}", calls[1])
	}
}

func TestTrackerCleanResets(t *testing.T) {
	tr := NewTracker(newScanner(5, 5))

	tr.MarkAll()
	tr.MarkPut(Region{Row: 0, Col: 0, Height: 1, Width: 1})
	tr.MarkScroll(0, 4, 0, 4, 1, 0)

	if !tr.Dirty() || !tr.All() {
		t.Fatal("tracker should be dirty")
	}

	tr.Clean()
	if tr.Dirty() || tr.All() || len(tr.Ops()) != 0 {
		t.Error("tracker should be clean after Clean")
	}

	// Idempotent.
	tr.Clean()
	if tr.Dirty() {
		t.Error("second Clean must stay clean")
	}
}

func TestTrackerOpOrder(t *testing.T) {
	tr := NewTracker(newScanner(10, 10))
	tr.SetBase(true)

	tr.MarkPut(Region{Row: 0, Col: 0, Height: 1, Width: 2})
	tr.MarkScroll(0, 9, 0, 9, 2, 0)
	tr.MarkPut(Region{Row: 8, Col: 0, Height: 1, Width: 2})

	ops := tr.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	wantKinds := []OpKind{OpPut, OpScroll, OpPut}
	for i, k := range wantKinds {
		if ops[i].Kind != k {
			t.Errorf("op %d kind = %v, want %v", i, ops[i].Kind, k)
		}
	}
	if ops[1].RowDelta != 2 {
		t.Errorf("scroll delta = %d, want 2", ops[1].RowDelta)
	}
}

func TestLogSkipsEmptyPut(t *testing.T) {
	var l Log
	l.Put(Region{Row: 1, Col: 1, Height: 0, Width: 5})
	if l.Len() != 0 {
		t.Error("empty region should not be logged")
	}
}
