package input

import (
	"testing"

	"github.com/gridwing/gridwing/internal/event"
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/ui/core"
	"github.com/gridwing/gridwing/internal/ui/grid"
)

func newTestRouter(t *testing.T) (*Router, *grid.Tree, *[]Event) {
	t.Helper()
	bus := event.NewBus()
	tree := grid.NewTree(grid.Config{
		Metrics: core.FontMetrics{CellWidth: 8, CellHeight: 16, Ascent: 12},
		Bus:     bus,
		Logger:  logging.Null,
	})
	tree.Root().Resize(20, 20, false)
	tree.SetMouseEnabled(true)

	var events []Event
	if _, err := bus.Subscribe(event.TopicInput, func(ev event.Event) {
		events = append(events, ev.Payload.(Event))
	}); err != nil {
		t.Fatal(err)
	}
	return NewRouter(tree, bus, logging.Null), tree, &events
}

func TestPointerHitsDeepestGrid(t *testing.T) {
	router, tree, events := newTestRouter(t)

	child := tree.EnsureGrid(2)
	child.Resize(5, 5, false)
	child.SetPosition(3, 3, 5, 5, true)

	router.Pointer(KindMousePress, ButtonLeft, 4, 4, 0)

	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	ev := (*events)[0]
	if ev.GridID != 2 {
		t.Errorf("hit grid %d, want 2", ev.GridID)
	}
	if ev.Row != 1 || ev.Col != 1 {
		t.Errorf("local point = (%d,%d), want (1,1)", ev.Row, ev.Col)
	}
	if ev.Kind != KindMousePress || ev.Button != ButtonLeft {
		t.Errorf("event = %+v", ev)
	}
}

func TestPointerDroppedWhenMouseDisabled(t *testing.T) {
	router, tree, events := newTestRouter(t)
	tree.SetMouseEnabled(false)

	router.Pointer(KindMousePress, ButtonLeft, 0, 0, 0)

	if len(*events) != 0 {
		t.Error("pointer event should be dropped while disabled")
	}
}

func TestDragPinsToPressedGrid(t *testing.T) {
	router, tree, events := newTestRouter(t)

	child := tree.EnsureGrid(2)
	child.Resize(5, 5, false)
	child.SetPosition(3, 3, 5, 5, true)

	// Press inside the child, drag out past its edge, then release.
	router.Pointer(KindMousePress, ButtonLeft, 4, 4, 0)
	router.Pointer(KindMouseDrag, ButtonLeft, 10, 10, 0)
	router.Pointer(KindMouseRelease, ButtonLeft, 12, 1, 0)

	if len(*events) != 3 {
		t.Fatalf("got %d events, want 3", len(*events))
	}
	drag := (*events)[1]
	if drag.GridID != 2 {
		t.Errorf("drag jumped to grid %d, want pinned grid 2", drag.GridID)
	}
	// Local coordinates may run past the grid's extent during a drag.
	if drag.Row != 7 || drag.Col != 7 {
		t.Errorf("drag local point = (%d,%d), want (7,7)", drag.Row, drag.Col)
	}
	release := (*events)[2]
	if release.GridID != 2 {
		t.Errorf("release went to grid %d, want pinned grid 2", release.GridID)
	}

	// The pin is gone after release.
	router.Pointer(KindMousePress, ButtonLeft, 0, 0, 0)
	if got := (*events)[3].GridID; got != grid.RootGridID {
		t.Errorf("post-release press hit grid %d, want root", got)
	}
}

func TestWheelRoutesByPosition(t *testing.T) {
	router, tree, events := newTestRouter(t)

	child := tree.EnsureGrid(2)
	child.Resize(5, 5, false)
	child.SetPosition(0, 0, 5, 5, true)

	router.Pointer(KindMouseWheel, WheelDown, 2, 2, ModCtrl)

	ev := (*events)[0]
	if ev.GridID != 2 || ev.Button != WheelDown {
		t.Errorf("wheel event = %+v", ev)
	}
	if !ev.Mods.Has(ModCtrl) {
		t.Error("modifiers lost")
	}
}

func TestKeyRoutesToFocusedGrid(t *testing.T) {
	router, tree, events := newTestRouter(t)

	child := tree.EnsureGrid(2)
	child.Resize(5, 5, false)
	child.SetPosition(3, 3, 5, 5, true)
	tree.CursorGoto(2, 1, 2)

	router.Key("F5", ModShift)

	ev := (*events)[0]
	if ev.Kind != KindKey || ev.GridID != 2 {
		t.Errorf("key event = %+v", ev)
	}
	if ev.Key != "F5" || !ev.Mods.Has(ModShift) {
		t.Errorf("key detail = %+v", ev)
	}
	if ev.Row != 1 || ev.Col != 2 {
		t.Errorf("key carries cursor position (%d,%d), want (1,2)", ev.Row, ev.Col)
	}
}

func TestTextRoutesToFocusedGrid(t *testing.T) {
	router, _, events := newTestRouter(t)

	router.Text("héllo")

	ev := (*events)[0]
	if ev.Kind != KindText || ev.GridID != grid.RootGridID {
		t.Errorf("text event = %+v", ev)
	}
	if ev.Text != "héllo" {
		t.Errorf("text = %q", ev.Text)
	}
}
