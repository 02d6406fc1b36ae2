package command

import (
	"github.com/gridwing/gridwing/internal/logging"
	"github.com/gridwing/gridwing/internal/ui/grid"
)

// Interpreter applies decoded commands to a grid tree. Dispatch is
// stateless; every command is processed to completion before the next
// is accepted, on the single UI processing thread.
type Interpreter struct {
	tree *grid.Tree
	log  *logging.Logger

	// msgZ is the paint order for the message area, above ordinary
	// floats.
	msgZ int
}

// NewInterpreter creates an interpreter over the given tree.
func NewInterpreter(tree *grid.Tree, log *logging.Logger) *Interpreter {
	if log == nil {
		log = logging.Default()
	}
	return &Interpreter{
		tree: tree,
		log:  log.WithComponent("interp"),
		msgZ: 200,
	}
}

// Apply dispatches one command. Unknown command types are protocol
// anomalies: logged and ignored with no state change.
func (in *Interpreter) Apply(cmd Command) {
	switch c := cmd.(type) {
	case Resize:
		in.tree.EnsureGrid(c.Grid).Resize(c.Rows, c.Cols, true)

	case Clear:
		g, ok := in.tree.Grid(c.Grid)
		if !ok {
			in.log.Warn("clear for unknown grid %d", c.Grid)
			return
		}
		size := g.Size()
		g.Resize(size.Rows, size.Cols, false)

	case Line:
		g, ok := in.tree.Grid(c.Grid)
		if !ok {
			in.log.Warn("line for unknown grid %d", c.Grid)
			return
		}
		for _, row := range c.Rows {
			g.WriteRow(row.Row, row.ColStart, row.Runs)
		}

	case CursorGoto:
		in.tree.CursorGoto(c.Grid, c.Row, c.Col)

	case Scroll:
		g, ok := in.tree.Grid(c.Grid)
		if !ok {
			in.log.Warn("scroll for unknown grid %d", c.Grid)
			return
		}
		g.Scroll(c.Top, c.Bot, c.Left, c.Right, c.Rows, c.Cols)

	case ModeChange:
		in.tree.ModeChange(c.Name, c.Index)

	case Busy:
		in.tree.SetBusy(c.Busy)

	case Mouse:
		in.tree.SetMouseEnabled(c.Enabled)

	case WinClose:
		in.tree.CloseWin(c.Grid)

	case WinPos:
		g := in.tree.EnsureGrid(c.Grid)
		in.tree.AddChild(c.AnchorGrid, c.Grid)
		g.SetFloating(false)
		g.SetHidden(false)
		g.SetPosition(c.Row, c.Col, c.Rows, c.Cols, true)

	case WinHide:
		g, ok := in.tree.Grid(c.Grid)
		if !ok {
			in.log.Warn("win_hide for unknown grid %d", c.Grid)
			return
		}
		g.SetHidden(true)
		if p := g.Parent(); p != nil {
			p.MarkAllDirty()
		}

	case MsgSetPos:
		g := in.tree.EnsureGrid(c.Grid)
		in.tree.AddChild(grid.RootGridID, c.Grid)
		g.SetFloating(true)
		g.SetHidden(false)
		g.SetZ(in.msgZ)
		g.SetMsgPos(c.Scrolled, c.SepChar)
		size := g.Size()
		g.SetPosition(c.Row, 0, size.Rows, size.Cols, false)

	case WinFloatPos:
		in.applyFloatPos(c)

	case PopupMenuShow:
		in.tree.ShowPopupMenu(c.Items, c.Selected, c.Row, c.Col, c.Grid)

	case PopupMenuSelect:
		in.tree.SelectPopupMenu(c.Index)

	case PopupMenuHide:
		in.tree.HidePopupMenu()

	case WinExternalPos:
		in.tree.PromoteExternal(c.Grid, c.Win)

	default:
		in.log.Warn("unrecognized command %T ignored", cmd)
	}
}

// applyFloatPos anchors a floating grid against a corner of the
// anchor grid and repositions it.
func (in *Interpreter) applyFloatPos(c WinFloatPos) {
	g := in.tree.EnsureGrid(c.Grid)
	in.tree.AddChild(c.AnchorGrid, c.Grid)
	g.SetFloating(true)
	g.SetHidden(false)
	if c.ZIndex > 0 {
		g.SetZ(c.ZIndex)
	}

	size := g.Size()
	row, col := c.Row, c.Col
	switch c.Anchor {
	case AnchorNE:
		col -= size.Cols
	case AnchorSW:
		row -= size.Rows
	case AnchorSE:
		row -= size.Rows
		col -= size.Cols
	case AnchorNW, "":
		// Top-left anchor needs no adjustment.
	default:
		in.log.Warn("unknown float anchor %q, using NW", c.Anchor)
	}

	g.SetPosition(row, col, size.Rows, size.Cols, c.Focusable)
}
