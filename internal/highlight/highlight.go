// Package highlight maintains the highlight attribute table keyed by
// highlight id and resolves ids to concrete colors and text attributes.
package highlight

import (
	"github.com/gridwing/gridwing/internal/ui/core"
)

// DefaultID is the highlight id of unstyled text.
const DefaultID = 0

// Attr is one entry in the highlight table, as defined by the host.
// Unset colors fall back to the table defaults at resolution time.
type Attr struct {
	Fg      core.Color
	Bg      core.Color
	Special core.Color

	// FgSet/BgSet/SpecialSet indicate which colors the definition
	// carries; the protocol omits colors that match the defaults.
	FgSet      bool
	BgSet      bool
	SpecialSet bool

	Attrs core.Attribute
}

// Resolved is a fully resolved highlight: every color concrete,
// reverse video already applied.
type Resolved struct {
	Fg      core.Color
	Bg      core.Color
	Special core.Color
	Attrs   core.Attribute
}

// Table maps highlight ids to attribute definitions plus the theme
// default colors. Id 0 always resolves to the plain default colors.
type Table struct {
	attrs map[int]Attr

	defaultFg      core.Color
	defaultBg      core.Color
	defaultSpecial core.Color
}

// NewTable creates an empty highlight table with black-on-white defaults.
func NewTable() *Table {
	return &Table{
		attrs:          make(map[int]Attr),
		defaultFg:      core.ColorFromRGB(0, 0, 0),
		defaultBg:      core.ColorFromRGB(255, 255, 255),
		defaultSpecial: core.ColorFromRGB(255, 0, 0),
	}
}

// SetDefaultColors sets the theme default fg/bg/special colors.
func (t *Table) SetDefaultColors(fg, bg, special core.Color) {
	t.defaultFg = fg
	t.defaultBg = bg
	t.defaultSpecial = special
}

// DefaultColors returns the theme default fg/bg/special colors.
func (t *Table) DefaultColors() (fg, bg, special core.Color) {
	return t.defaultFg, t.defaultBg, t.defaultSpecial
}

// Define sets or replaces the attribute definition for id.
// Defining id 0 is ignored; it is always the plain defaults.
func (t *Table) Define(id int, a Attr) {
	if id == DefaultID {
		return
	}
	t.attrs[id] = a
}

// Lookup returns the raw definition for id.
func (t *Table) Lookup(id int) (Attr, bool) {
	a, ok := t.attrs[id]
	return a, ok
}

// IsItalic returns true if id resolves to an italic highlight.
func (t *Table) IsItalic(id int) bool {
	a, ok := t.attrs[id]
	return ok && a.Attrs.Has(core.AttrItalic)
}

// Resolve returns the concrete colors and attributes for id.
// Undefined ids resolve like the default highlight.
func (t *Table) Resolve(id int) Resolved {
	r := Resolved{
		Fg:      t.defaultFg,
		Bg:      t.defaultBg,
		Special: t.defaultSpecial,
	}

	a, ok := t.attrs[id]
	if !ok {
		return r
	}

	if a.FgSet {
		r.Fg = a.Fg
	}
	if a.BgSet {
		r.Bg = a.Bg
	}
	if a.SpecialSet {
		r.Special = a.Special
	}
	r.Attrs = a.Attrs

	if a.Attrs.Has(core.AttrReverse) {
		r.Fg, r.Bg = r.Bg, r.Fg
		r.Attrs = r.Attrs.Without(core.AttrReverse)
	}

	return r
}
