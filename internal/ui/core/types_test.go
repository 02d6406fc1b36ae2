package core

import (
	"testing"
)

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)

	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("attributes not set")
	}
	if a.Has(AttrUnderline) {
		t.Error("underline should not be set")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold should be removed")
	}
	if !a.Has(AttrItalic) {
		t.Error("italic should survive removal of bold")
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{R: 255}, false},
		{"00ff00", Color{G: 255}, false},
		{"#abc", Color{R: 0xaa, G: 0xbb, B: 0xcc}, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ColorFromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ColorFromHex(%q) expected error", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q): %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if c.HlID != 0 || c.Text != " " {
		t.Errorf("EmptyCell() = %+v, want {0, space}", c)
	}
	if !c.IsEmpty() {
		t.Error("empty cell should report IsEmpty")
	}
	if (Cell{HlID: 1, Text: " "}).IsEmpty() {
		t.Error("highlighted cell is not empty")
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a", 1},
		{"", 0},
		{"界", 2},
		{"é", 1}, // combining accent
	}

	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	m := FontMetrics{CellWidth: 8, CellHeight: 16, Ascent: 12}
	if !m.Valid() {
		t.Error("metrics should be valid")
	}
	if got := m.PixelWidth(10); got != 80 {
		t.Errorf("PixelWidth(10) = %v, want 80", got)
	}
	if got := m.PixelHeight(3); got != 48 {
		t.Errorf("PixelHeight(3) = %v, want 48", got)
	}
	if (FontMetrics{}).Valid() {
		t.Error("zero metrics should be invalid")
	}
}
