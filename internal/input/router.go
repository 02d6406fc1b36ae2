package input

import (
	"github.com/gridwing/gridwing/internal/event"
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/ui/grid"
)

// Router hit-tests raw events against the composition tree and
// re-emits them as abstract input events on the bus, tagged with the
// originating grid id.
type Router struct {
	tree *grid.Tree
	bus  *event.Bus
	log  *logging.Logger

	// dragGrid pins a drag to the grid that took the press, so the
	// drag does not jump grids mid-gesture.
	dragGrid   int
	dragActive bool
}

// NewRouter creates a router over the given tree and bus.
func NewRouter(tree *grid.Tree, bus *event.Bus, log *logging.Logger) *Router {
	if log == nil {
		log = logging.Default()
	}
	return &Router{
		tree: tree,
		bus:  bus,
		log:  log.WithComponent("input"),
	}
}

// Pointer routes a pointer event at root coordinates (row, col).
// Events are dropped while pointer handling is disabled.
func (r *Router) Pointer(kind Kind, button Button, row, col int, mods Modifiers) {
	if !r.tree.MouseEnabled() {
		r.log.Debug("pointer event dropped, mouse disabled")
		return
	}

	target, localRow, localCol := r.tree.Root().FindTargetGrid(row, col)

	switch kind {
	case KindMousePress:
		r.dragGrid = target.ID()
		r.dragActive = true
	case KindMouseDrag:
		if r.dragActive {
			if pinned, ok := r.tree.Grid(r.dragGrid); ok {
				ar, ac := pinned.AbsoluteAnchor()
				target, localRow, localCol = pinned, row-ar, col-ac
			}
		}
	case KindMouseRelease:
		if r.dragActive {
			if pinned, ok := r.tree.Grid(r.dragGrid); ok {
				ar, ac := pinned.AbsoluteAnchor()
				target, localRow, localCol = pinned, row-ar, col-ac
			}
		}
		r.dragActive = false
	}

	r.bus.Publish(event.TopicInput, Event{
		Kind:   kind,
		GridID: target.ID(),
		Row:    localRow,
		Col:    localCol,
		Button: button,
		Mods:   mods,
	})
}

// Key routes a key press to the focused grid.
func (r *Router) Key(key string, mods Modifiers) {
	focused := r.tree.FocusedGrid()
	cur := focused.Cursor()
	r.bus.Publish(event.TopicInput, Event{
		Kind:   KindKey,
		GridID: focused.ID(),
		Row:    cur.Row,
		Col:    cur.Col,
		Key:    key,
		Mods:   mods,
	})
}

// Text routes committed text input to the focused grid.
func (r *Router) Text(text string) {
	focused := r.tree.FocusedGrid()
	cur := focused.Cursor()
	r.bus.Publish(event.TopicInput, Event{
		Kind:   KindText,
		GridID: focused.ID(),
		Row:    cur.Row,
		Col:    cur.Col,
		Text:   text,
	})
}
