package grid

import (
	"fmt"

	"github.com/gridwing/gridwing/internal/ui/dirty"
)

// RegionInParent returns the rectangle this grid covers in its
// parent's coordinate space.
func (g *Grid) RegionInParent() dirty.Region {
	size := g.buf.Size()
	return dirty.Region{
		Row:    g.anchor.Row,
		Col:    g.anchor.Col,
		Height: size.Rows,
		Width:  size.Cols,
	}
}

// FindTargetGrid resolves a point in this grid's coordinate space to
// the deepest grid under it, translating the point into that grid's
// local coordinates. Children are scanned in insertion order and the
// last match wins: later insertion paints higher, so it takes the
// hit. Unmatched points resolve to the grid itself.
func (g *Grid) FindTargetGrid(row, col int) (*Grid, int, int) {
	var hit *Grid
	for _, child := range g.children {
		if child.hidden {
			continue
		}
		if child.RegionInParent().ContainsPoint(row, col) {
			hit = child
		}
	}
	if hit == nil {
		return g, row, col
	}
	return hit.FindTargetGrid(row-hit.anchor.Row, col-hit.anchor.Col)
}

// AbsoluteAnchor returns this grid's top-left offset in root
// coordinates, summing anchors up the parent chain. A top-level grid
// contributes (0, 0).
func (g *Grid) AbsoluteAnchor() (row, col int) {
	if g.parent == nil {
		return 0, 0
	}
	pr, pc := g.parent.AbsoluteAnchor()
	return pr + g.anchor.Row, pc + g.anchor.Col
}

// SetPosition repositions and resizes this grid within its parent and
// delegates the invalidation decision to the parent. Only non-root
// grids are positioned this way; calling it on a grid with no parent
// is a protocol-sequencing violation and panics.
func (g *Grid) SetPosition(row, col, rows, cols int, focusable bool) {
	if g.parent == nil {
		g.tree.log.Error("SetPosition on detached grid %d", g.id)
		panic(fmt.Sprintf("grid: SetPosition on grid %d with no parent", g.id))
	}

	old := g.RegionInParent()

	g.anchor = Position{Row: row, Col: col}
	g.focusable = focusable
	size := g.buf.Size()
	if rows != size.Rows || cols != size.Cols {
		g.Resize(rows, cols, true)
	}

	g.parent.onChildChanged(old, g.RegionInParent())
}

// onChildChanged marks the areas of this grid revealed by a child's
// move or resize. The grid caches its content, so a child retreating
// over a previously drawn area costs nothing; any area the child no
// longer covers must be repainted here, since the child will not.
func (g *Grid) onChildChanged(oldRegion, newRegion dirty.Region) {
	switch {
	case newRegion.Contains(oldRegion):
		// Child only grew; it repaints itself.

	case oldRegion.Contains(newRegion):
		// Child shrank: repaint only the revealed strips.
		strips := [4]dirty.Region{
			{Row: oldRegion.Row, Col: oldRegion.Col, Height: newRegion.Row - oldRegion.Row, Width: oldRegion.Width},
			{Row: newRegion.RowEnd(), Col: oldRegion.Col, Height: oldRegion.RowEnd() - newRegion.RowEnd(), Width: oldRegion.Width},
			{Row: newRegion.Row, Col: oldRegion.Col, Height: newRegion.Height, Width: newRegion.Col - oldRegion.Col},
			{Row: newRegion.Row, Col: newRegion.ColEnd(), Height: newRegion.Height, Width: oldRegion.ColEnd() - newRegion.ColEnd()},
		}
		for _, strip := range strips {
			if !strip.Empty() {
				g.tracker.MarkPut(strip)
			}
		}

	default:
		// Disjoint or partially overlapping: repaint the whole old
		// rectangle.
		g.tracker.MarkPut(oldRegion)
	}
}

// addChild appends child to this grid's children, keeping insertion
// order (which doubles as the paint-order tie-break).
func (g *Grid) addChild(child *Grid) {
	child.parent = g
	child.z = g.z + 1
	g.children = append(g.children, child)
}

// removeChild detaches child from this grid. The child's parent
// back-pointer is cleared and its paint order reset.
func (g *Grid) removeChild(child *Grid) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	child.z = DefaultZ
}
