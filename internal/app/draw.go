package app

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/deskfolio/internal/form"
	"github.com/iburimskiy/deskfolio/internal/page"
	"github.com/iburimskiy/deskfolio/internal/theme"
)

// revealRise is how far section content rises while fading in.
const revealRise = 24

// revealRiseOf is the downward offset a section's content still carries while
// its reveal runs. Drawing and click hit-testing share it.
func revealRiseOf(s *page.Section) int {
	return int((1 - s.Reveal) * revealRise)
}

func (a *App) Draw(screen *ebiten.Image) {
	a.drawBackground(screen)
	a.drawDust(screen)
	a.drawSections(screen)
	a.drawHeader(screen)
	a.drawBackTop(screen)
	a.drawScrollbar(screen)
	a.drawBanner(screen)
	a.drawConfetti(screen)
	a.drawFocusRing(screen)
	a.drawFooter(screen)
}

func (a *App) drawBackground(screen *ebiten.Image) {
	top, bottom := a.theme.BackgroundTop, a.theme.BackgroundBottom
	for y := 0; y < a.height; y++ {
		t := float64(y) / float64(a.height)
		vector.StrokeLine(screen, 0, float32(y), float32(a.width), float32(y), 1, lerpRGBA(top, bottom, t), false)
	}
}

func (a *App) drawDust(screen *ebiten.Image) {
	for i := range a.dust.Dots {
		d := &a.dust.Dots[i]
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), fade(a.theme.Particle, d.Opacity), false)
	}
}

func (a *App) drawSections(screen *ebiten.Image) {
	for _, s := range a.doc.Sections {
		top := s.Offset - a.scroll.Pos
		if top > float64(a.height) || top+s.Extent < 0 {
			continue
		}
		y := top + (1-s.Reveal)*revealRise
		switch s.ID {
		case page.SectionHome:
			a.drawHero(screen, s, y, s.Reveal)
		case page.SectionAbout:
			a.drawAbout(screen, y, s.Reveal)
		case page.SectionSkills:
			a.drawSkills(screen, y, s.Reveal)
		case page.SectionProjects:
			a.drawProjects(screen, y, s.Reveal)
		case page.SectionContact:
			a.drawContact(screen, s, y, s.Reveal)
		}
	}
}

func (a *App) drawHero(screen *ebiten.Image, s *page.Section, y, alpha float64) {
	a.drawText(screen, strings.ToUpper(a.content.Name), contentX, y+190, 3, a.theme.Heading, alpha)
	a.drawText(screen, a.content.Role, contentX, y+250, 2, a.theme.Accent, alpha)
	a.drawText(screen, a.content.Tagline, contentX, y+300, 1, a.theme.Text, alpha)

	// Call to action, aligned with its hit rect.
	l := layout{a.width, a.height}
	r := viewRect(l.heroCTA(s), a.scroll.Pos).Add(image.Pt(0, revealRiseOf(s)))
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(a.theme.Accent, alpha), false)
	a.drawText(screen, "Get in touch", float64(r.Min.X)+22, float64(r.Min.Y)+14, 1, color.RGBA{255, 255, 255, 255}, alpha)
}

func (a *App) drawHeading(screen *ebiten.Image, title string, y, alpha float64) {
	vector.DrawFilledRect(screen, contentX, float32(y)+2, 6, 26, fade(a.theme.Accent, alpha), false)
	a.drawText(screen, title, contentX+16, y, headingScale, a.theme.Heading, alpha)
}

func (a *App) drawAbout(screen *ebiten.Image, y, alpha float64) {
	a.drawHeading(screen, "About", y+60, alpha)
	a.drawText(screen, strings.Join(a.content.About, "\n"), contentX, y+120, 1, a.theme.Text, alpha)
}

func (a *App) drawSkills(screen *ebiten.Image, y, alpha float64) {
	a.drawHeading(screen, "Skills", y+60, alpha)
	for i, g := range a.content.Skills {
		x := float64(contentX + i*240)
		a.drawText(screen, g.Name, x, y+130, 1, a.theme.Accent, alpha)
		a.drawText(screen, strings.Join(g.Items, "\n"), x, y+155, 1, a.theme.Text, alpha)
	}
}

func (a *App) drawProjects(screen *ebiten.Image, y, alpha float64) {
	a.drawHeading(screen, "Projects", y+60, alpha)

	const cardW, cardH, gap = 440, 150, 24
	cols := 2
	if a.width < contentX+2*cardW+gap {
		cols = 1
	}
	for i, p := range a.content.Projects {
		x := float64(contentX + (i%cols)*(cardW+gap))
		cy := y + 120 + float64(i/cols)*(cardH+gap)

		vector.DrawFilledRect(screen, float32(x), float32(cy), cardW, cardH, fade(a.theme.Surface, alpha), false)
		vector.StrokeRect(screen, float32(x), float32(cy), cardW, cardH, 1, fade(a.theme.SurfaceBorder, alpha), false)

		a.drawText(screen, p.Name, x+16, cy+14, 1, a.theme.Accent, alpha)
		a.drawText(screen, wrapText(p.Description, (cardW-32)/charW), x+16, cy+40, 1, a.theme.Text, alpha)
		a.drawText(screen, strings.Join(p.Tags, " | "), x+16, cy+cardH-44, 1, a.theme.TextMuted, alpha)
		a.drawText(screen, p.Link, x+16, cy+cardH-24, 1, a.theme.TextMuted, alpha)
	}
}

func (a *App) drawContact(screen *ebiten.Image, s *page.Section, y, alpha float64) {
	a.drawHeading(screen, "Contact", y+60, alpha)
	a.drawText(screen, a.content.Contact, contentX, y+104, 1, a.theme.Text, alpha)

	rise := revealRiseOf(s)
	l := layout{a.width, a.height}
	fl := l.form(s)

	for f := form.FieldName; f < form.FieldCount; f++ {
		a.drawField(screen, f, fl, rise, alpha)
	}
	a.drawSubmit(screen, fl, rise, alpha)

	// Sidebar details next to the form.
	x := float64(contentX + 520)
	a.drawText(screen, "Email", x, y+150, 1, a.theme.TextMuted, alpha)
	a.drawText(screen, a.content.Email, x, y+170, 1, a.theme.Text, alpha)
	a.drawText(screen, "Location", x, y+210, 1, a.theme.TextMuted, alpha)
	a.drawText(screen, a.content.Location, x, y+230, 1, a.theme.Text, alpha)
}

func (a *App) drawField(screen *ebiten.Image, f form.Field, fl formLayout, rise int, alpha float64) {
	label := viewRect(fl.labels[f], a.scroll.Pos).Add(image.Pt(0, rise))
	box := viewRect(fl.inputs[f], a.scroll.Pos).Add(image.Pt(0, rise))
	focused := a.focus.formField() == f

	a.drawText(screen, f.Label(), float64(label.Min.X), float64(label.Min.Y), 1, a.theme.TextMuted, alpha)

	vector.DrawFilledRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), fade(a.theme.InputBg, alpha), false)
	border := a.theme.InputBorder
	width := float32(1)
	if a.form.Errors[f] != "" {
		border = a.theme.Error
		width = 2
	} else if focused {
		border = a.theme.InputFocus
		width = 2
	}
	vector.StrokeRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), width, fade(border, alpha), false)

	value := a.form.Values[f]
	a.drawText(screen, value, float64(box.Min.X)+8, float64(box.Min.Y)+8, 1, a.theme.Text, alpha)

	// Blinking caret at the end of the value. The debug font advances one
	// cell per rune, so count runes, not bytes.
	if focused && a.tick%60 < 30 {
		lines := strings.Split(value, "\n")
		last := lines[len(lines)-1]
		cx := box.Min.X + 8 + utf8.RuneCountInString(last)*charW
		cy := box.Min.Y + 8 + (len(lines)-1)*lineH
		vector.DrawFilledRect(screen, float32(cx), float32(cy), 2, lineH-2, fade(a.theme.InputFocus, alpha), false)
	}

	if msg := a.form.Errors[f]; msg != "" {
		a.drawText(screen, msg, float64(box.Min.X), float64(box.Max.Y)+4, 1, a.theme.Error, alpha)
	}
}

func (a *App) drawSubmit(screen *ebiten.Image, fl formLayout, rise int, alpha float64) {
	r := viewRect(fl.submit, a.scroll.Pos).Add(image.Pt(0, rise))

	bg := a.theme.Accent
	label := "Send message"
	if a.submitter.Pending() {
		bg = a.theme.TextMuted
		label = "Sending..."
	}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(bg, alpha), false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, fade(a.theme.SurfaceBorder, alpha), false)
	a.drawText(screen, label, float64(r.Min.X)+16, float64(r.Min.Y)+12, 1, color.RGBA{255, 255, 255, 255}, alpha)

	note := fmt.Sprintf("%d archived locally | O to review", a.archived)
	a.drawText(screen, note, float64(r.Min.X), float64(r.Max.Y)+10, 1, a.theme.TextMuted, alpha)
}

func (a *App) drawHeader(screen *ebiten.Image) {
	l := layout{a.width, a.height}

	bg := a.theme.HeaderBg
	if a.nav.Scrolled {
		bg = a.theme.HeaderScrolledBg
	}
	vector.DrawFilledRect(screen, 0, 0, float32(a.width), headerHeight, bg, false)
	if a.nav.Scrolled {
		// Elevation shadow once the page moves.
		vector.StrokeLine(screen, 0, headerHeight, float32(a.width), headerHeight, 2, color.RGBA{0, 0, 0, 90}, false)
	}

	a.drawText(screen, "IB", 24, 16, 2, a.theme.Accent, 1)
	a.drawText(screen, "portfolio", 60, 24, 1, a.theme.HeaderText, 1)

	for i, s := range a.doc.Sections {
		r := l.navEntry(a.doc.Sections, i)
		clr := a.theme.NavText
		if s.ID == a.nav.ActiveID {
			clr = a.theme.NavActive
			vector.StrokeLine(screen, float32(r.Min.X+6), float32(r.Max.Y), float32(r.Max.X-6), float32(r.Max.Y), 2, a.theme.NavActive, false)
		}
		a.drawText(screen, s.Title, float64(r.Min.X+navEntryPad/2), float64(r.Min.Y+4), 1, clr, 1)
	}

	tb := l.themeButton()
	vector.DrawFilledRect(screen, float32(tb.Min.X), float32(tb.Min.Y), float32(tb.Dx()), float32(tb.Dy()), a.theme.Surface, false)
	vector.StrokeRect(screen, float32(tb.Min.X), float32(tb.Min.Y), float32(tb.Dx()), float32(tb.Dy()), 1, a.theme.SurfaceBorder, false)
	label := "Theme: dark"
	if a.theme.Name == "light" {
		label = "Theme: light"
	}
	a.drawText(screen, label, float64(tb.Min.X)+(themeButtonW-float64(len(label)*charW))/2, float64(tb.Min.Y)+8, 1, a.theme.HeaderText, 1)

	// The skip chip surfaces only while focused, like a skip link.
	if a.focus == focusSkip {
		c := l.skipChip()
		vector.DrawFilledRect(screen, float32(c.Min.X), float32(c.Min.Y), float32(c.Dx()), float32(c.Dy()), a.theme.Accent, false)
		a.drawText(screen, "Skip to content", float64(c.Min.X)+12, float64(c.Min.Y)+6, 1, color.RGBA{255, 255, 255, 255}, 1)
	}
}

func (a *App) drawBackTop(screen *ebiten.Image) {
	if !a.nav.Scrolled {
		return
	}
	r := layout{a.width, a.height}.backTop()
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	vector.DrawFilledCircle(screen, cx, cy, backTopSize/2, a.theme.Surface, false)
	vector.StrokeCircle(screen, cx, cy, backTopSize/2, 1, a.theme.SurfaceBorder, false)
	vector.StrokeLine(screen, cx-8, cy+4, cx, cy-6, 2, a.theme.Accent, false)
	vector.StrokeLine(screen, cx, cy-6, cx+8, cy+4, 2, a.theme.Accent, false)
}

func (a *App) drawScrollbar(screen *ebiten.Image) {
	max := a.doc.MaxScroll(float64(a.height))
	if max <= 0 {
		return
	}
	l := layout{a.width, a.height}
	track := l.scrollTrack()
	thumb := l.scrollThumb(a.scroll.Pos, max, a.doc.Height)

	vector.DrawFilledRect(screen, float32(track.Min.X), float32(track.Min.Y), float32(track.Dx()), float32(track.Dy()), fade(a.theme.SurfaceBorder, 0.35), false)
	vector.DrawFilledRect(screen, float32(thumb.Min.X), float32(thumb.Min.Y), float32(thumb.Dx()), float32(thumb.Dy()), fade(a.theme.TextMuted, 0.9), false)
}

func (a *App) drawBanner(screen *ebiten.Image) {
	if !a.banner.visible() {
		return
	}
	alpha := 1.0
	if a.banner.remaining < 30 {
		alpha = float64(a.banner.remaining) / 30
	}

	r := layout{a.width, a.height}.banner()
	level := a.theme.Info
	switch a.banner.level {
	case bannerSuccess:
		level = a.theme.Success
	case bannerError:
		level = a.theme.Error
	}

	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fade(a.theme.Surface, alpha), false)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), 4, float32(r.Dy()), fade(level, alpha), false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, fade(a.theme.SurfaceBorder, alpha), false)
	a.drawText(screen, a.banner.text, float64(r.Min.X)+16, float64(r.Min.Y)+10, 1, a.theme.Text, alpha)
}

func (a *App) drawConfetti(screen *ebiten.Image) {
	if a.burst == nil {
		return
	}
	for i := range a.burst.Pieces {
		p := &a.burst.Pieces[i]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-1.5, -1.5)
		op.GeoM.Scale(p.Size/3, p.Size/3)
		op.GeoM.Rotate(p.Rot)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(theme.ConfettiPalette[p.Hue])
		screen.DrawImage(a.confettiBase, op)
	}
}

// drawFocusRing outlines the focused control for keyboard users.
func (a *App) drawFocusRing(screen *ebiten.Image) {
	if a.focus == focusNone {
		return
	}
	l := layout{a.width, a.height}

	var r image.Rectangle
	switch {
	case a.focus == focusSkip:
		r = l.skipChip()
	case a.focus.navIndex() >= 0:
		r = l.navEntry(a.doc.Sections, a.focus.navIndex())
	case a.focus == focusTheme:
		r = l.themeButton()
	default:
		contact := a.doc.ByID(page.SectionContact)
		if contact == nil {
			return
		}
		fl := l.form(contact)
		rise := image.Pt(0, revealRiseOf(contact))
		if f := a.focus.formField(); f != form.NoField {
			r = viewRect(fl.inputs[f], a.scroll.Pos).Add(rise)
		} else if a.focus == focusSubmit {
			r = viewRect(fl.submit, a.scroll.Pos).Add(rise)
		}
	}

	vector.StrokeRect(screen, float32(r.Min.X-3), float32(r.Min.Y-3), float32(r.Dx()+6), float32(r.Dy()+6), 2, a.theme.FocusRing, false)
}

func (a *App) drawFooter(screen *ebiten.Image) {
	hints := "T theme | S sound | M motion | O outbox | Tab focus | Esc quit"
	a.drawText(screen, hints, 16, float64(a.height-22), 1, a.theme.TextMuted, 0.9)
}

// drawText draws s at (x, y) in the given color, scale and opacity.
func (a *App) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.RGBA, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(a.text.image(s), op)
}

// textCache renders strings once through the debug font onto transparent
// backings so they can be recolored, scaled and faded at draw time.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: map[string]*ebiten.Image{}}
}

func (c *textCache) image(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	// Typing churns through prefixes; drop the cache instead of growing
	// without bound.
	if len(c.images) > 512 {
		c.images = map[string]*ebiten.Image{}
	}

	w := 1
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	img := ebiten.NewImage(w*charW+charW, len(lines)*lineH+4)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	c.images[s] = img
	return img
}

// fade premultiplies a color with an opacity.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// wrapText breaks s into lines of at most width characters on word
// boundaries.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
