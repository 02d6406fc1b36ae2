package grid

import (
	"github.com/gridwing/gridwing/internal/event"
	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/ui/core"
)

// RootGridID is the id of the base grid. It exists for the whole
// process lifetime and is never destroyed.
const RootGridID = 1

// Config configures a Tree.
type Config struct {
	// Metrics is the initial glyph cell geometry.
	Metrics core.FontMetrics

	// Multigrid enables per-window grids. The base grid then stops
	// guessing at damage owned by its children.
	Multigrid bool

	// Highlights is the shared highlight table. A fresh table is
	// created when nil.
	Highlights *highlight.Table

	// Bus receives resize/input/external-window notifications.
	// Optional.
	Bus *event.Bus

	// Logger defaults to the process logger when nil.
	Logger *logging.Logger
}

// ExternalWinEvent is the payload published on TopicWinExternal.
type ExternalWinEvent struct {
	GridID int
	WinID  int
	Closed bool
}

// Tree owns the grid table and the composition root. Grids hold
// non-owning parent pointers; ownership lives here and in each grid's
// children slice.
//
// All mutation happens synchronously on the single UI processing
// thread; the tree performs no locking.
type Tree struct {
	grids map[int]*Grid
	root  *Grid

	hl      *highlight.Table
	metrics core.FontMetrics
	bus     *event.Bus
	log     *logging.Logger

	multigrid    bool
	mouseEnabled bool
	busy         bool

	modes     []ModeInfo
	modeIndex int

	// Measured host surface and the visible cell dimensions derived
	// from it.
	pixelWidth  float64
	pixelHeight float64
	visible     core.GridSize
}

// NewTree creates a tree with the root grid in place.
func NewTree(cfg Config) *Tree {
	t := &Tree{
		grids:     make(map[int]*Grid),
		hl:        cfg.Highlights,
		metrics:   cfg.Metrics,
		bus:       cfg.Bus,
		log:       cfg.Logger,
		multigrid: cfg.Multigrid,
	}
	if t.hl == nil {
		t.hl = highlight.NewTable()
	}
	if t.log == nil {
		t.log = logging.Default()
	}

	t.root = newGrid(t, RootGridID)
	t.root.tracker.SetBase(cfg.Multigrid)
	t.root.cursor.Focused = true
	t.grids[RootGridID] = t.root

	return t
}

// Root returns the base grid.
func (t *Tree) Root() *Grid {
	return t.root
}

// Grid returns the grid with the given id.
func (t *Tree) Grid(id int) (*Grid, bool) {
	g, ok := t.grids[id]
	return g, ok
}

// Highlights returns the shared highlight table.
func (t *Tree) Highlights() *highlight.Table {
	return t.hl
}

// Metrics returns the current font metrics.
func (t *Tree) Metrics() core.FontMetrics {
	return t.metrics
}

// Multigrid returns true when per-window grids are enabled.
func (t *Tree) Multigrid() bool {
	return t.multigrid
}

// EnsureGrid returns the grid with the given id, creating it as a
// child of the root when the protocol references it for the first
// time.
func (t *Tree) EnsureGrid(id int) *Grid {
	if g, ok := t.grids[id]; ok {
		return g
	}
	return t.CreateChild(RootGridID, id)
}

// CreateChild creates a new grid under the given parent. Returns the
// existing grid unchanged if the id is already in use.
func (t *Tree) CreateChild(parentID, id int) *Grid {
	if g, ok := t.grids[id]; ok {
		return g
	}
	parent, ok := t.grids[parentID]
	if !ok {
		t.log.Warn("create child %d under unknown grid %d", id, parentID)
		return nil
	}
	g := newGrid(t, id)
	g.cursor.Enabled = !t.busy
	parent.addChild(g)
	t.grids[id] = g
	return g
}

// AddChild reparents an existing grid under a new parent, keeping its
// buffer and state.
func (t *Tree) AddChild(parentID, id int) {
	g, ok := t.grids[id]
	if !ok {
		t.log.Warn("add unknown grid %d", id)
		return
	}
	parent, ok := t.grids[parentID]
	if !ok || parent == g {
		t.log.Warn("add grid %d under invalid parent %d", id, parentID)
		return
	}
	if g.parent == parent {
		return
	}
	if g.parent != nil {
		g.parent.removeChild(g)
	}
	parent.addChild(g)
}

// Detach removes a grid from its parent without destroying it. The
// parent back-pointer is cleared and the paint order reset.
func (t *Tree) Detach(id int) {
	g, ok := t.grids[id]
	if !ok || g.parent == nil {
		return
	}
	old := g.RegionInParent()
	parent := g.parent
	parent.removeChild(g)
	parent.tracker.MarkPut(old)
}

// RemoveChild destroys a grid and its whole subtree. The root grid is
// never removed.
func (t *Tree) RemoveChild(id int) {
	if id == RootGridID {
		t.log.Warn("refusing to remove root grid")
		return
	}
	g, ok := t.grids[id]
	if !ok {
		return
	}
	t.Detach(id)
	t.destroy(g)
}

func (t *Tree) destroy(g *Grid) {
	for _, child := range g.children {
		child.parent = nil
		t.destroy(child)
	}
	g.children = nil
	delete(t.grids, g.id)
}

// MarkClean clears pending damage across the whole composition tree,
// including detached external grids. Idempotent; called by the
// renderer once per frame.
func (t *Tree) MarkClean() {
	for _, g := range t.grids {
		if g.parent == nil {
			g.MarkClean()
		}
	}
}

// MarkAllDirty invalidates every grid. Theme and font changes land
// here.
func (t *Tree) MarkAllDirty() {
	for _, g := range t.grids {
		if g.parent == nil {
			g.MarkAllDirty()
		}
	}
}

// Dirty returns true if any grid has pending damage.
func (t *Tree) Dirty() bool {
	for _, g := range t.grids {
		if g.tracker.Dirty() {
			return true
		}
	}
	return false
}

// SetBusy toggles the busy indicator. The cursor is disabled while
// busy.
func (t *Tree) SetBusy(busy bool) {
	t.busy = busy
	for _, g := range t.grids {
		g.cursor.Enabled = !busy
	}
}

// SetMouseEnabled toggles pointer handling.
func (t *Tree) SetMouseEnabled(enabled bool) {
	t.mouseEnabled = enabled
}

// MouseEnabled returns true when pointer handling is on.
func (t *Tree) MouseEnabled() bool {
	return t.mouseEnabled
}

// SetModes installs the cursor mode table.
func (t *Tree) SetModes(modes []ModeInfo) {
	t.modes = modes
}

// ModeChange switches the current cursor mode and recomputes the
// focused cursor's visual attributes.
func (t *Tree) ModeChange(name string, index int) {
	t.modeIndex = index
	for _, g := range t.grids {
		g.cursor.ModeIndex = index
		if g.cursor.Focused {
			g.recomputeCursor()
		}
	}
	t.log.Debug("mode change: %s (%d)", name, index)
}

// mode returns the mode definition at index, or a zero definition
// when the table does not cover it.
func (t *Tree) mode(index int) ModeInfo {
	if index < 0 || index >= len(t.modes) {
		return ModeInfo{}
	}
	return t.modes[index]
}

// FocusedGrid returns the grid owning the cursor, or the root.
func (t *Tree) FocusedGrid() *Grid {
	for _, g := range t.grids {
		if g != t.root && g.cursor.Focused {
			return g
		}
	}
	return t.root
}

// CursorGoto moves the cursor to grid-local (row, col) on the named
// grid. Focus migrates to that grid; every other grid loses it,
// except the base grid under multigrid, which keeps screen-position
// bookkeeping through the upward forwarding chain.
func (t *Tree) CursorGoto(id, row, col int) {
	g, ok := t.grids[id]
	if !ok {
		t.log.Warn("cursor_goto for unknown grid %d", id)
		return
	}
	for _, other := range t.grids {
		if other != g {
			other.cursor.Focused = false
		}
	}
	g.cursorGoto(id, row, col)
}

// ShowPopupMenu displays the completion menu. Delivery starts at the
// focused grid and bubbles toward the named grid with coordinate
// translation, hiding menus it passes on the way.
func (t *Tree) ShowPopupMenu(items []PopupMenuItem, selected, row, col, gridID int) {
	start := t.FocusedGrid()
	if start.id != gridID {
		if _, ok := t.grids[gridID]; !ok {
			t.log.Warn("popupmenu_show for unknown grid %d", gridID)
			return
		}
	}
	start.popupMenuShow(gridID, items, selected, row, col)
}

// SelectPopupMenu moves the menu selection on whichever grid shows it.
func (t *Tree) SelectPopupMenu(index int) {
	for _, g := range t.grids {
		if g.popup.Visible {
			g.popupMenuSelect(index)
		}
	}
}

// HidePopupMenu dismisses any visible menu.
func (t *Tree) HidePopupMenu() {
	for _, g := range t.grids {
		if g.popup.Visible {
			g.popupMenuHide()
		}
	}
}

// SetMetrics replaces the font metrics, re-derives visible dimensions
// and cursor geometry, and invalidates everything.
func (t *Tree) SetMetrics(m core.FontMetrics) {
	t.metrics = m
	t.MarkAllDirty()
	for _, g := range t.grids {
		if g.cursor.Focused {
			g.recomputeCursor()
		}
	}
	t.refreshVisibleSize()
}

// SetMeasuredPixelSize records the host surface size and recomputes
// the visible grid cell dimensions from the glyph metrics. A resize
// notification fires only when the cell dimensions actually change.
func (t *Tree) SetMeasuredPixelSize(width, height float64) {
	t.pixelWidth = width
	t.pixelHeight = height
	t.refreshVisibleSize()
}

func (t *Tree) refreshVisibleSize() {
	if !t.metrics.Valid() {
		return
	}
	size := core.GridSize{
		Rows: int(t.pixelHeight / t.metrics.CellHeight),
		Cols: int(t.pixelWidth / t.metrics.CellWidth),
	}
	if size == t.visible {
		return
	}
	t.visible = size
	if t.bus != nil {
		t.bus.Publish(event.TopicResized, size)
	}
}

// VisibleSize returns the visible cell dimensions derived from the
// last measured pixel size.
func (t *Tree) VisibleSize() core.GridSize {
	return t.visible
}

// CloseWin handles a window close for the given grid: external grids
// notify the host, floating grids hide and invalidate the root, and
// ordinary windows are destroyed.
func (t *Tree) CloseWin(id int) {
	g, ok := t.grids[id]
	if !ok {
		t.log.Warn("win_close for unknown grid %d", id)
		return
	}
	switch {
	case g.external:
		if t.bus != nil {
			t.bus.Publish(event.TopicWinExternal, ExternalWinEvent{
				GridID: g.id,
				WinID:  g.extWinID,
				Closed: true,
			})
		}
	case g.floating:
		g.hidden = true
		t.root.MarkAllDirty()
	default:
		t.RemoveChild(id)
	}
}

// PromoteExternal detaches the grid from its parent and promotes it
// to an externally hosted top-level surface. Repeat calls only update
// the window handle.
func (t *Tree) PromoteExternal(id, winID int) {
	g, ok := t.grids[id]
	if !ok {
		t.log.Warn("win_external_pos for unknown grid %d", id)
		return
	}
	first := !g.external
	g.extWinID = winID
	g.external = true
	if first {
		t.Detach(id)
		g.hidden = false
		g.MarkAllDirty()
		if t.bus != nil {
			t.bus.Publish(event.TopicWinExternal, ExternalWinEvent{
				GridID: g.id,
				WinID:  winID,
			})
		}
	}
}
