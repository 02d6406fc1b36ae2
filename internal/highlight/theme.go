package highlight

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gridwing/gridwing/internal/ui/core"
)

// Blend mixes two colors in Lab space. t=0 yields a, t=1 yields b.
// Used to derive the popup-menu background from the theme colors.
func Blend(a, b core.Color, t float64) core.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return fromColorful(ca.BlendLab(cb, t).Clamped())
}

// Darken moves a color toward black by amount in [0, 1].
func Darken(c core.Color, amount float64) core.Color {
	return Blend(c, core.ColorFromRGB(0, 0, 0), amount)
}

// Lighten moves a color toward white by amount in [0, 1].
func Lighten(c core.Color, amount float64) core.Color {
	return Blend(c, core.ColorFromRGB(255, 255, 255), amount)
}

// Emphasize nudges a color away from its own luminance so it stays
// visible over similar backgrounds: dark colors lighten, light colors
// darken. Used for the popup-menu selection bar.
func Emphasize(c core.Color, amount float64) core.Color {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	_, _, l := cc.Hsl()
	if l < 0.5 {
		return Lighten(c, amount)
	}
	return Darken(c, amount)
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.RGB255()
	return core.Color{R: r, G: g, B: b}
}
