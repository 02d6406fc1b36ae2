// Package render paints the grid tree onto a terminal through tcell.
// It is a preview backend: it drains each grid's draw-op log once per
// frame, composites grids by paint order, and marks the tree clean.
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/input"
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/ui/dirty"
	"github.com/gridwing/gridwing/internal/ui/grid"
)

// Renderer drives a tcell screen from the grid tree.
type Renderer struct {
	screen tcell.Screen
	tree   *grid.Tree
	router *input.Router
	log    *logging.Logger

	lastButtons tcell.ButtonMask
}

// New creates a renderer over a fresh terminal screen.
func New(tree *grid.Tree, router *input.Router, log *logging.Logger) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, tree, router, log), nil
}

// NewWithScreen creates a renderer over the given screen. Used by
// tests with a simulation screen.
func NewWithScreen(screen tcell.Screen, tree *grid.Tree, router *input.Router, log *logging.Logger) *Renderer {
	if log == nil {
		log = logging.Default()
	}
	return &Renderer{
		screen: screen,
		tree:   tree,
		router: router,
		log:    log.WithComponent("render"),
	}
}

// Init initializes the terminal.
func (r *Renderer) Init() error {
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (r *Renderer) Fini() {
	r.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (r *Renderer) Size() (cols, rows int) {
	return r.screen.Size()
}

// Frame drains pending damage, paints it, and marks the tree clean.
// No-op when nothing is dirty.
func (r *Renderer) Frame() {
	if !r.tree.Dirty() {
		return
	}

	order := r.paintOrder()
	for _, g := range order {
		r.paintGrid(g)
	}
	for _, g := range order {
		r.paintPopupMenu(g)
	}
	r.tree.MarkClean()

	r.placeCursor()
	r.screen.Show()
}

// paintOrder returns the visible grids sorted by z, then insertion
// (map iteration is randomized, so ties fall back to grid id, which
// tracks creation order in the supported protocol).
func (r *Renderer) paintOrder() []*grid.Grid {
	var grids []*grid.Grid
	r.collect(r.tree.Root(), &grids)
	sort.SliceStable(grids, func(i, j int) bool {
		if grids[i].Z() != grids[j].Z() {
			return grids[i].Z() < grids[j].Z()
		}
		return grids[i].ID() < grids[j].ID()
	})
	return grids
}

func (r *Renderer) collect(g *grid.Grid, out *[]*grid.Grid) {
	if g.Hidden() {
		return
	}
	*out = append(*out, g)
	for _, child := range g.Children() {
		r.collect(child, out)
	}
}

// paintGrid repaints a grid's damage. The terminal has no blit, so
// scroll hints repaint their whole region.
func (r *Renderer) paintGrid(g *grid.Grid) {
	size := g.Size()
	whole := dirty.Region{Height: size.Rows, Width: size.Cols}

	if g.NeedsFullRedraw() {
		r.paintRegion(g, whole)
		return
	}

	for _, op := range g.DrawOps() {
		switch op.Kind {
		case dirty.OpPut:
			r.paintRegion(g, op.Rect)
		case dirty.OpScroll:
			region := dirty.Region{
				Row:    op.Top,
				Col:    op.Left,
				Height: op.Bot - op.Top + 1,
				Width:  op.Right - op.Left + 1,
			}
			r.paintRegion(g, region)
		}
	}
}

func (r *Renderer) paintRegion(g *grid.Grid, region dirty.Region) {
	hl := r.tree.Highlights()
	ar, ac := g.AbsoluteAnchor()

	for row := region.Row; row < region.RowEnd(); row++ {
		for col := region.Col; col < region.ColEnd(); col++ {
			cell := g.Cell(row, col)
			style := toTcellStyle(hl.Resolve(cell.HlID))

			runes := []rune(cell.Text)
			mainc := ' '
			var combc []rune
			if len(runes) > 0 {
				mainc = runes[0]
				combc = runes[1:]
			}
			r.screen.SetContent(ac+col, ar+row, mainc, combc, style)
		}
	}
}

// Menu blend factors: the item background sits slightly off the theme
// background, the selection bar pushes further from it.
const (
	menuBgBlend = 0.12
	menuSelStep = 0.3
)

// paintPopupMenu draws a grid's completion menu over the composited
// cells at its placed position, with the selection bar emphasized
// against the blended menu background.
func (r *Renderer) paintPopupMenu(g *grid.Grid) {
	m := g.PopupMenu()
	if !m.Visible {
		return
	}

	fg, bg, _ := r.tree.Highlights().DefaultColors()
	menuBg := highlight.Blend(bg, fg, menuBgBlend)
	selBg := highlight.Emphasize(menuBg, menuSelStep)

	region := g.PopupMenuRegion()
	ar, ac := g.AbsoluteAnchor()

	for i := 0; i < m.Rows; i++ {
		rowBg := menuBg
		if i == m.Selected {
			rowBg = selBg
		}
		style := tcell.StyleDefault.
			Foreground(toTcellColor(fg)).
			Background(toTcellColor(rowBg))

		word := []rune(m.Items[i].Word)
		for col := 0; col < m.Cols; col++ {
			ch := ' '
			if col < len(word) {
				ch = word[col]
			}
			r.screen.SetContent(ac+region.Col+col, ar+region.Row+i, ch, nil, style)
		}
	}
}

func (r *Renderer) placeCursor() {
	for _, g := range r.paintOrder() {
		cur := g.Cursor()
		if cur.Focused && cur.Enabled {
			ar, ac := g.AbsoluteAnchor()
			r.screen.ShowCursor(ac+cur.Col, ar+cur.Row)
			return
		}
	}
	r.screen.HideCursor()
}

// PollEvent blocks for the next terminal event.
func (r *Renderer) PollEvent() tcell.Event {
	return r.screen.PollEvent()
}

// HandleEvent routes a terminal event into the input router.
// Returns false when the event asks the application to quit.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := e.Size()
		m := r.tree.Metrics()
		r.tree.SetMeasuredPixelSize(m.PixelWidth(cols), m.PixelHeight(rows))
		r.screen.Sync()

	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			return false
		}
		if e.Key() == tcell.KeyRune && e.Modifiers() == 0 {
			r.router.Text(string(e.Rune()))
		} else {
			r.router.Key(e.Name(), toModifiers(e.Modifiers()))
		}

	case *tcell.EventMouse:
		r.routeMouse(e)
	}
	return true
}

func (r *Renderer) routeMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	buttons := e.Buttons()
	mods := toModifiers(e.Modifiers())

	wheel := buttons & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	pressed := buttons &^ wheel
	was := r.lastButtons &^ wheel
	r.lastButtons = buttons

	switch {
	case wheel != 0:
		r.router.Pointer(input.KindMouseWheel, toButton(wheel), y, x, mods)
	case pressed != 0 && was == 0:
		r.router.Pointer(input.KindMousePress, toButton(pressed), y, x, mods)
	case pressed != 0 && was != 0:
		r.router.Pointer(input.KindMouseDrag, toButton(pressed), y, x, mods)
	case pressed == 0 && was != 0:
		r.router.Pointer(input.KindMouseRelease, toButton(was), y, x, mods)
	}
}
