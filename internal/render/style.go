package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gridwing/gridwing/internal/highlight"
	"github.com/gridwing/gridwing/internal/input"
	"github.com/gridwing/gridwing/internal/ui/core"
)

// toTcellColor converts a core color to a tcell color.
func toTcellColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// toTcellStyle converts a resolved highlight to a tcell style.
func toTcellStyle(r highlight.Resolved) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(r.Fg)).
		Background(toTcellColor(r.Bg))

	if r.Attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if r.Attrs.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if r.Attrs.Has(core.AttrUnderline) || r.Attrs.Has(core.AttrUndercurl) {
		style = style.Underline(true)
	}
	if r.Attrs.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// toModifiers converts tcell modifier flags.
func toModifiers(m tcell.ModMask) input.Modifiers {
	var mods input.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}

// toButton converts a tcell button mask to the pressed button.
func toButton(m tcell.ButtonMask) input.Button {
	switch {
	case m&tcell.Button1 != 0:
		return input.ButtonLeft
	case m&tcell.Button2 != 0:
		return input.ButtonMiddle
	case m&tcell.Button3 != 0:
		return input.ButtonRight
	case m&tcell.WheelUp != 0:
		return input.WheelUp
	case m&tcell.WheelDown != 0:
		return input.WheelDown
	case m&tcell.WheelLeft != 0:
		return input.WheelLeft
	case m&tcell.WheelRight != 0:
		return input.WheelRight
	default:
		return input.ButtonNone
	}
}
