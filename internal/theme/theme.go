// Package theme defines the color palettes for the page and the toggle
// between them. Themes are immutable values owned by the caller; nothing in
// this package mutates shared state.
package theme

import (
	"image/color"

	"github.com/iburimskiy/deskfolio/internal/config"
)

// Theme defines the semantic colors for every page element.
type Theme struct {
	Name config.ThemeName

	// Page background vertical gradient.
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA

	// Fixed header.
	HeaderBg         color.RGBA
	HeaderScrolledBg color.RGBA
	HeaderText       color.RGBA

	// Navigation.
	NavText   color.RGBA
	NavActive color.RGBA

	// Content.
	Heading   color.RGBA
	Text      color.RGBA
	TextMuted color.RGBA
	Accent    color.RGBA

	// Cards and form fields.
	Surface       color.RGBA
	SurfaceBorder color.RGBA
	InputBg       color.RGBA
	InputBorder   color.RGBA
	InputFocus    color.RGBA

	// Accessibility.
	FocusRing color.RGBA

	// Banner severities.
	Info    color.RGBA
	Success color.RGBA
	Error   color.RGBA

	// Decorations.
	Particle color.RGBA
}

// Dark is the default palette.
var Dark = Theme{
	Name:             config.ThemeDark,
	BackgroundTop:    color.RGBA{R: 15, G: 23, B: 42, A: 255},    // #0F172A
	BackgroundBottom: color.RGBA{R: 2, G: 6, B: 23, A: 255},      // #020617
	HeaderBg:         color.RGBA{R: 12, G: 19, B: 35, A: 210},    // translucent slate, premultiplied
	HeaderScrolledBg: color.RGBA{R: 2, G: 6, B: 22, A: 245},      // near opaque once scrolled
	HeaderText:       color.RGBA{R: 241, G: 245, B: 249, A: 255}, // #F1F5F9
	NavText:          color.RGBA{R: 148, G: 163, B: 184, A: 255}, // #94A3B8
	NavActive:        color.RGBA{R: 129, G: 140, B: 248, A: 255}, // #818CF8
	Heading:          color.RGBA{R: 248, G: 250, B: 252, A: 255}, // #F8FAFC
	Text:             color.RGBA{R: 203, G: 213, B: 225, A: 255}, // #CBD5E1
	TextMuted:        color.RGBA{R: 100, G: 116, B: 139, A: 255}, // #64748B
	Accent:           color.RGBA{R: 99, G: 102, B: 241, A: 255},  // #6366F1
	Surface:          color.RGBA{R: 30, G: 41, B: 59, A: 255},    // #1E293B
	SurfaceBorder:    color.RGBA{R: 51, G: 65, B: 85, A: 255},    // #334155
	InputBg:          color.RGBA{R: 15, G: 23, B: 42, A: 255},    // #0F172A
	InputBorder:      color.RGBA{R: 71, G: 85, B: 105, A: 255},   // #475569
	InputFocus:       color.RGBA{R: 129, G: 140, B: 248, A: 255}, // #818CF8
	FocusRing:        color.RGBA{R: 250, G: 204, B: 21, A: 255},  // #FACC15
	Info:             color.RGBA{R: 56, G: 189, B: 248, A: 255},  // #38BDF8
	Success:          color.RGBA{R: 74, G: 222, B: 128, A: 255},  // #4ADE80
	Error:            color.RGBA{R: 248, G: 113, B: 113, A: 255}, // #F87171
	Particle:         color.RGBA{R: 148, G: 163, B: 184, A: 255}, // #94A3B8
}

// Light is the alternate palette.
var Light = Theme{
	Name:             config.ThemeLight,
	BackgroundTop:    color.RGBA{R: 248, G: 250, B: 252, A: 255}, // #F8FAFC
	BackgroundBottom: color.RGBA{R: 226, G: 232, B: 240, A: 255}, // #E2E8F0
	HeaderBg:         color.RGBA{R: 215, G: 215, B: 215, A: 215}, // translucent white, premultiplied
	HeaderScrolledBg: color.RGBA{R: 250, G: 250, B: 250, A: 250},
	HeaderText:       color.RGBA{R: 15, G: 23, B: 42, A: 255},    // #0F172A
	NavText:          color.RGBA{R: 71, G: 85, B: 105, A: 255},   // #475569
	NavActive:        color.RGBA{R: 79, G: 70, B: 229, A: 255},   // #4F46E5
	Heading:          color.RGBA{R: 15, G: 23, B: 42, A: 255},    // #0F172A
	Text:             color.RGBA{R: 51, G: 65, B: 85, A: 255},    // #334155
	TextMuted:        color.RGBA{R: 100, G: 116, B: 139, A: 255}, // #64748B
	Accent:           color.RGBA{R: 79, G: 70, B: 229, A: 255},   // #4F46E5
	Surface:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
	SurfaceBorder:    color.RGBA{R: 203, G: 213, B: 225, A: 255}, // #CBD5E1
	InputBg:          color.RGBA{R: 248, G: 250, B: 252, A: 255}, // #F8FAFC
	InputBorder:      color.RGBA{R: 148, G: 163, B: 184, A: 255}, // #94A3B8
	InputFocus:       color.RGBA{R: 79, G: 70, B: 229, A: 255},   // #4F46E5
	FocusRing:        color.RGBA{R: 202, G: 138, B: 4, A: 255},   // #CA8A04
	Info:             color.RGBA{R: 2, G: 132, B: 199, A: 255},   // #0284C7
	Success:          color.RGBA{R: 22, G: 163, B: 74, A: 255},   // #16A34A
	Error:            color.RGBA{R: 220, G: 38, B: 38, A: 255},   // #DC2626
	Particle:         color.RGBA{R: 100, G: 116, B: 139, A: 255}, // #64748B
}

// ByName returns the palette for the given name, defaulting to Dark.
func ByName(name config.ThemeName) Theme {
	if name == config.ThemeLight {
		return Light
	}
	return Dark
}

// Next returns the other palette, for the header toggle.
func (t Theme) Next() Theme {
	if t.Name == config.ThemeDark {
		return Light
	}
	return Dark
}

// ConfettiPalette is the rainbow used for confetti squares, generated by
// stepping the hue wheel.
var ConfettiPalette = func() []color.RGBA {
	const steps = 12
	pal := make([]color.RGBA, steps)
	for i := range pal {
		r, g, b := hsvToRGB(float64(i)*360/steps, 0.85, 0.95)
		pal[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal
}()
