// Package command defines the closed set of typed screen-update
// commands produced by the protocol decoder, and the interpreter that
// applies them to the grid tree.
package command

import (
	"github.com/gridwing/gridwing/internal/ui/grid"
)

// Command is one decoded screen-update command. The set is closed:
// the interpreter matches exhaustively and logs a no-op for anything
// it does not recognize.
type Command interface {
	isCommand()
}

// Resize sets a grid's dimensions, preserving overlapping content.
type Resize struct {
	Grid int
	Rows int
	Cols int
}

// Clear resets a grid's content to empty cells at its current size.
type Clear struct {
	Grid int
}

// RowUpdate is one row's worth of RLE cell runs.
type RowUpdate struct {
	Row      int
	ColStart int
	Runs     []grid.CellRun
}

// Line applies RLE cell writes to one or more rows of a grid.
type Line struct {
	Grid int
	Rows []RowUpdate
}

// CursorGoto moves the cursor to grid-local coordinates on a grid.
type CursorGoto struct {
	Grid int
	Row  int
	Col  int
}

// Scroll shifts a region of a grid. Top/Bot and Left/Right are
// inclusive; Cols is reserved and always zero.
type Scroll struct {
	Grid  int
	Top   int
	Bot   int
	Left  int
	Right int
	Rows  int
	Cols  int
}

// ModeChange switches the cursor mode.
type ModeChange struct {
	Name  string
	Index int
}

// Busy toggles the busy indicator; the cursor is disabled while busy.
type Busy struct {
	Busy bool
}

// Mouse enables or disables pointer handling.
type Mouse struct {
	Enabled bool
}

// WinClose closes the window backing a grid.
type WinClose struct {
	Grid int
}

// WinPos places a tiled window grid inside an anchor grid.
type WinPos struct {
	Grid       int
	AnchorGrid int
	Row        int
	Col        int
	Cols       int
	Rows       int
}

// WinHide hides a window grid without destroying it.
type WinHide struct {
	Grid int
}

// MsgSetPos places the message area grid at a root row.
type MsgSetPos struct {
	Grid     int
	Row      int
	Scrolled bool
	SepChar  string
}

// Float anchor corners for WinFloatPos.
const (
	AnchorNW = "NW"
	AnchorNE = "NE"
	AnchorSW = "SW"
	AnchorSE = "SE"
)

// WinFloatPos places a floating window grid over an anchor grid.
type WinFloatPos struct {
	Grid       int
	Win        int
	Anchor     string
	AnchorGrid int
	Row        int
	Col        int
	Focusable  bool
	ZIndex     int
}

// PopupMenuShow displays the completion menu.
type PopupMenuShow struct {
	Items    []grid.PopupMenuItem
	Selected int
	Row      int
	Col      int
	Grid     int
}

// PopupMenuSelect moves the menu selection; -1 clears it.
type PopupMenuSelect struct {
	Index int
}

// PopupMenuHide dismisses the menu.
type PopupMenuHide struct{}

// WinExternalPos promotes a grid to an externally hosted surface.
type WinExternalPos struct {
	Grid int
	Win  int
}

func (Resize) isCommand()          {}
func (Clear) isCommand()           {}
func (Line) isCommand()            {}
func (CursorGoto) isCommand()      {}
func (Scroll) isCommand()          {}
func (ModeChange) isCommand()      {}
func (Busy) isCommand()            {}
func (Mouse) isCommand()           {}
func (WinClose) isCommand()        {}
func (WinPos) isCommand()          {}
func (WinHide) isCommand()         {}
func (MsgSetPos) isCommand()       {}
func (WinFloatPos) isCommand()     {}
func (PopupMenuShow) isCommand()   {}
func (PopupMenuSelect) isCommand() {}
func (PopupMenuHide) isCommand()   {}
func (WinExternalPos) isCommand()  {}
