package grid

import (
	"github.com/gridwing/gridwing/internal/ui/core"
	"github.com/gridwing/gridwing/internal/ui/dirty"
)

// maxPopupRows caps the visible popup-menu height.
const maxPopupRows = 15

// PopupMenuItem is one completion entry.
type PopupMenuItem struct {
	Word string
	Kind string
	Menu string
	Info string
}

// PopupMenu is the popup-menu state of one grid. Row/Col and
// Rows/Cols are grid-cell-space geometry exposed to the host for
// protocol acknowledgment; X/Y/Width/Height are the derived pixel
// bounding box.
type PopupMenu struct {
	Visible  bool
	Selected int
	Items    []PopupMenuItem

	Row  int
	Col  int
	Rows int
	Cols int

	X      float64
	Y      float64
	Width  float64
	Height float64
}

// popupMenuShow handles a popup-menu-show delivery. The protocol
// names a grid; when it is not this one the call forwards to the
// parent with translated coordinates (the same bubbling as cursor
// placement) and this grid's own menu hides.
func (g *Grid) popupMenuShow(targetID int, items []PopupMenuItem, selected, row, col int) {
	if targetID != g.id {
		if g.parent != nil {
			g.parent.popupMenuShow(targetID, items, selected, row+g.anchor.Row, col+g.anchor.Col)
		} else {
			g.tree.log.Warn("popupmenu_show for unreachable grid %d", targetID)
		}
		g.popupMenuHide()
		return
	}

	m := &g.popup
	if m.Visible {
		// Re-show at a new anchor: the old placement's cells need a
		// repaint too.
		g.tracker.MarkPut(g.PopupMenuRegion())
	}
	m.Visible = true
	m.Items = items
	m.Selected = selected
	m.Row = row
	m.Col = col

	m.Rows = len(items)
	if m.Rows > maxPopupRows {
		m.Rows = maxPopupRows
	}

	m.Cols = 0
	for _, item := range items {
		if w := core.TextWidth(item.Word); w > m.Cols {
			m.Cols = w
		}
	}

	g.placePopupMenu()
	g.tracker.MarkPut(g.PopupMenuRegion())
}

// placePopupMenu converts the menu's cell geometry to pixel bounds
// and clamps its anchor between the text start and the cursor,
// constrained within the editor's pixel bounds.
func (g *Grid) placePopupMenu() {
	m := &g.popup
	metrics := g.tree.metrics

	m.Width = metrics.PixelWidth(m.Cols)
	m.Height = metrics.PixelHeight(m.Rows)

	ar, ac := g.AbsoluteAnchor()

	textX := metrics.PixelWidth(ac + m.Col)
	cursorX := metrics.PixelWidth(ac + g.cursor.Col)
	x := textX
	if x > cursorX {
		x = cursorX
	}

	editorW := g.tree.pixelWidth
	editorH := g.tree.pixelHeight
	if editorW > 0 && x+m.Width > editorW {
		x = editorW - m.Width
	}
	if x < 0 {
		x = 0
	}

	// Below the anchor row; flipped above when it would run off the
	// bottom edge.
	y := metrics.PixelHeight(ar + m.Row + 1)
	if editorH > 0 && y+m.Height > editorH {
		y = metrics.PixelHeight(ar+m.Row) - m.Height
	}
	if y < 0 {
		y = 0
	}

	m.X = x
	m.Y = y
}

// popupMenuSelect moves the selection. Index -1 clears it.
func (g *Grid) popupMenuSelect(index int) {
	if !g.popup.Visible {
		return
	}
	g.popup.Selected = index
	g.tracker.MarkPut(g.PopupMenuRegion())
}

// popupMenuHide dismisses the menu and repaints the cells it covered.
func (g *Grid) popupMenuHide() {
	if !g.popup.Visible {
		return
	}
	region := g.PopupMenuRegion()
	g.popup.Visible = false
	g.popup.Items = nil
	g.popup.Selected = -1
	g.tracker.MarkPut(region)
}

// PopupMenuRegion returns the grid-cell rectangle the menu occupies,
// derived from the placed pixel geometry so a menu flipped above its
// anchor or slid off the cursor column reports the cells it actually
// covers.
func (g *Grid) PopupMenuRegion() dirty.Region {
	m := g.popup
	row := m.Row + 1
	col := m.Col
	if fm := g.tree.metrics; fm.Valid() {
		ar, ac := g.AbsoluteAnchor()
		row = int(m.Y/fm.CellHeight) - ar
		col = int(m.X/fm.CellWidth) - ac
	}
	return dirty.Region{Row: row, Col: col, Height: m.Rows, Width: m.Cols}
}
