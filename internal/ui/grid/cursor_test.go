package grid

import (
	"testing"

	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/ui/core"
)

func TestCursorGotoFocusesNamedGrid(t *testing.T) {
	tree := newTestTree(t, false)
	tree.Root().Resize(10, 10, false)

	child := tree.EnsureGrid(2)
	child.Resize(4, 4, false)
	child.SetPosition(3, 2, 4, 4, true)

	tree.CursorGoto(2, 1, 1)

	cur := child.Cursor()
	if !cur.Focused || cur.Row != 1 || cur.Col != 1 {
		t.Errorf("child cursor = %+v, want focused at (1,1)", cur)
	}

	// The root keeps screen-position bookkeeping without focus.
	rootCur := tree.Root().Cursor()
	if rootCur.Focused {
		t.Error("root should lose focus")
	}
	if rootCur.Row != 4 || rootCur.Col != 3 {
		t.Errorf("root bookkeeping = (%d,%d), want (4,3)", rootCur.Row, rootCur.Col)
	}
}

func TestCursorGotoFocusMigratesBack(t *testing.T) {
	tree := newTestTree(t, false)
	tree.Root().Resize(10, 10, false)

	child := tree.EnsureGrid(2)
	child.Resize(4, 4, false)
	child.SetPosition(0, 0, 4, 4, true)

	tree.CursorGoto(2, 1, 1)
	tree.CursorGoto(RootGridID, 5, 5)

	if child.Cursor().Focused {
		t.Error("child should lose focus")
	}
	cur := tree.Root().Cursor()
	if !cur.Focused || cur.Row != 5 || cur.Col != 5 {
		t.Errorf("root cursor = %+v, want focused at (5,5)", cur)
	}
}

func TestCursorGotoUnknownGridIgnored(t *testing.T) {
	tree := newTestTree(t, false)
	tree.Root().Resize(5, 5, false)

	tree.CursorGoto(99, 0, 0)

	if !tree.Root().Cursor().Focused {
		t.Error("focus should be untouched")
	}
}

func TestCursorDefaultCellUsesReverseVideo(t *testing.T) {
	tree := newTestTree(t, false)
	g := tree.Root()
	g.Resize(5, 5, false)

	fg, bg, _ := tree.Highlights().DefaultColors()

	tree.CursorGoto(RootGridID, 2, 2)

	cur := g.Cursor()
	if cur.Fg != bg || cur.Bg != fg {
		t.Errorf("cursor colors = fg %+v bg %+v, want swapped defaults", cur.Fg, cur.Bg)
	}
}

func TestCursorTakesCellHighlight(t *testing.T) {
	tree := newTestTree(t, false)
	g := tree.Root()
	g.Resize(5, 5, false)

	red := core.ColorFromRGB(200, 40, 40)
	tree.Highlights().Define(7, highlight.Attr{
		Fg:    red,
		FgSet: true,
		Attrs: core.AttrBold,
	})
	g.WriteRow(1, 0, []CellRun{{HlID: 7, Text: "x", Repeat: 5}})

	tree.CursorGoto(RootGridID, 1, 2)

	cur := g.Cursor()
	if cur.Fg != red {
		t.Errorf("cursor fg = %+v, want cell highlight fg", cur.Fg)
	}
	if !cur.Attrs.Has(core.AttrBold) {
		t.Error("cursor should carry the cell's attributes")
	}
}

func TestCursorModeAttrOverridesCell(t *testing.T) {
	tree := newTestTree(t, false)
	g := tree.Root()
	g.Resize(5, 5, false)

	blue := core.ColorFromRGB(40, 40, 200)
	tree.Highlights().Define(9, highlight.Attr{Bg: blue, BgSet: true})
	tree.SetModes([]ModeInfo{{Name: "normal", AttrID: 9}})
	tree.ModeChange("normal", 0)

	tree.CursorGoto(RootGridID, 0, 0)

	if got := g.Cursor().Bg; got != blue {
		t.Errorf("cursor bg = %+v, want mode attr bg", got)
	}
}

func TestCursorWidthTracksGlyph(t *testing.T) {
	tree := newTestTree(t, false)
	g := tree.Root()
	g.Resize(5, 5, false)

	g.WriteRow(0, 0, []CellRun{{HlID: 0, Text: "界"}})

	tree.CursorGoto(RootGridID, 0, 0)
	if got := g.Cursor().Width; got != 16 {
		t.Errorf("wide glyph cursor width = %v, want 16", got)
	}

	tree.CursorGoto(RootGridID, 0, 3)
	if got := g.Cursor().Width; got != 8 {
		t.Errorf("narrow glyph cursor width = %v, want 8", got)
	}
}

func TestCursorScreenPosition(t *testing.T) {
	tree := newTestTree(t, false)
	tree.Root().Resize(10, 10, false)

	child := tree.EnsureGrid(2)
	child.Resize(4, 4, false)
	child.SetPosition(2, 3, 4, 4, true)

	tree.CursorGoto(2, 1, 1)

	cur := child.Cursor()
	// (row 2+1) * 16, (col 3+1) * 8.
	if cur.ScreenY != 48 || cur.ScreenX != 32 {
		t.Errorf("screen position = (%v,%v), want (32,48)", cur.ScreenX, cur.ScreenY)
	}
}

func TestCursorRecomputeAfterScroll(t *testing.T) {
	tree := newTestTree(t, false)
	g := tree.Root()
	g.Resize(5, 5, false)

	red := core.ColorFromRGB(200, 40, 40)
	tree.Highlights().Define(3, highlight.Attr{Fg: red, FgSet: true})
	g.WriteRow(2, 0, []CellRun{{HlID: 3, Text: "y", Repeat: 5}})

	tree.CursorGoto(RootGridID, 1, 0)

	// Row 2 scrolls into row 1, under the cursor; the cursor must pick
	// up the new cell's highlight.
	g.Scroll(0, 4, 0, 4, 1, 0)

	if got := g.Cursor().Fg; got != red {
		t.Errorf("post-scroll cursor fg = %+v, want scrolled-in highlight", got)
	}
}

func TestCursorShapeStrings(t *testing.T) {
	tests := []struct {
		shape CursorShape
		want  string
	}{
		{ShapeBlock, "block"},
		{ShapeHorizontal, "horizontal"},
		{ShapeVertical, "vertical"},
		{CursorShape(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
