// Package app wires the page model, particle systems, form, outbox and
// sounds into one Ebiten game. It owns all state explicitly; nothing in here
// or below it relies on package-level mutables.
package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/deskfolio/internal/config"
	"github.com/iburimskiy/deskfolio/internal/form"
	"github.com/iburimskiy/deskfolio/internal/outbox"
	"github.com/iburimskiy/deskfolio/internal/page"
	"github.com/iburimskiy/deskfolio/internal/particles"
	"github.com/iburimskiy/deskfolio/internal/perf"
	"github.com/iburimskiy/deskfolio/internal/sound"
	"github.com/iburimskiy/deskfolio/internal/theme"
)

// App is the portfolio page as a desktop window.
type App struct {
	cfg     *config.Config
	cfgPath string
	log     *slog.Logger
	rng     *rand.Rand

	theme   theme.Theme
	doc     *page.Document
	content page.Content
	nav     page.NavState
	scroll  page.Scroller

	dust  *particles.Field
	burst *particles.Burst

	form      *form.Form
	submitter *form.Submitter
	store     *outbox.Store
	sounds    *sound.Player
	sampler   *perf.Sampler

	banner       banner
	code         konami
	focus        focusID
	text         *textCache
	confettiBase *ebiten.Image

	width, height int
	reduceMotion  bool
	dragging      bool
	archived      int
	tick          int
}

// New assembles the app from its config. A broken outbox or speaker degrades
// to a banner and a log line instead of failing startup.
func New(cfg *config.Config, cfgPath string, log *slog.Logger) *App {
	start := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a := &App{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		rng:     rng,

		theme:   theme.ByName(cfg.Theme),
		doc:     page.NewDocument(),
		content: page.DefaultContent(),

		form: form.New(),
		text: newTextCache(),

		width:        cfg.Window.Width,
		height:       cfg.Window.Height,
		reduceMotion: cfg.ReducedMotion,
	}

	a.dust = particles.NewField(cfg.Particles.Ambient, float64(a.width), float64(a.height), rng)
	a.submitter = form.NewSubmitter(time.Duration(cfg.Submit.DelayMS)*time.Millisecond, cfg.Submit.SuccessRate, rng)
	a.sampler = perf.NewSampler(log)

	a.confettiBase = ebiten.NewImage(3, 3)
	a.confettiBase.Fill(color.White)

	store, err := outbox.Open(cfg.OutboxPath)
	if err != nil {
		log.Error("outbox unavailable", "path", cfg.OutboxPath, "error", err)
	} else {
		a.store = store
		if n, err := store.Count(); err != nil {
			log.Warn("counting outbox", "error", err)
		} else {
			a.archived = n
		}
	}

	sounds, err := sound.NewPlayer(cfg.Sound, rng)
	if err != nil {
		log.Warn("sound disabled", "error", err)
	}
	a.sounds = sounds

	log.Info("portfolio ready",
		"theme", a.theme.Name,
		"sections", len(a.doc.Sections),
		"archived", a.archived,
		"reduced_motion", a.reduceMotion,
		"startup_ms", time.Since(start).Seconds()*1000,
	)
	return a
}

// Close flushes resources at shutdown.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
	a.sounds.Close()
	a.log.Info("session closed", "uptime", a.sampler.Uptime())
}

func (a *App) Update() error {
	start := time.Now()
	a.tick++

	if err := a.handleInput(); err != nil {
		return err
	}

	a.scroll.Update()
	max := a.doc.MaxScroll(float64(a.height))
	if a.scroll.Pos > max {
		a.scroll.ScrollTo(a.scroll.Pos, max)
	}

	a.nav = page.Track(a.nav, a.scroll.Pos, a.doc.Sections)
	page.AdvanceReveals(a.doc, a.scroll.Pos, float64(a.height), a.reduceMotion)

	if !a.reduceMotion {
		a.dust.Update()
	}
	if a.burst != nil && a.burst.Update() {
		a.burst = nil
		a.log.Debug("confetti landed")
	}

	switch a.submitter.Update() {
	case form.OutcomeSuccess:
		a.submitSucceeded()
	case form.OutcomeFailure:
		a.submitFailed()
	}

	a.banner.update()
	a.sampler.Observe(time.Since(start), ebiten.ActualTPS(), ebiten.ActualFPS())
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 640 {
		outsideWidth = 640
	}
	if outsideHeight < 480 {
		outsideHeight = 480
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.dust.SetBounds(float64(a.width), float64(a.height))
		if a.burst != nil {
			a.burst.SetBounds(float64(a.width), float64(a.height))
		}
		a.log.Debug("window resized", "w", a.width, "h", a.height)
	}
	return a.width, a.height
}

// setFocus moves keyboard focus and keeps the form's caret in step.
func (a *App) setFocus(f focusID) {
	a.focus = f
	a.form.SetFocus(f.formField())
}

// activate fires the focused control, the Enter/Space action.
func (a *App) activate() {
	switch {
	case a.focus == focusSkip:
		a.glideToSection(1) // past the hero, to the first content section
	case a.focus.navIndex() >= 0:
		a.glideToSection(a.focus.navIndex())
		a.sounds.NavTick()
	case a.focus == focusTheme:
		a.toggleTheme()
	case a.focus == focusSubmit:
		a.submit()
	}
}

func (a *App) glideToSection(i int) {
	if i < 0 || i >= len(a.doc.Sections) {
		return
	}
	s := a.doc.Sections[i]
	target := s.Offset - headerHeight
	if a.reduceMotion {
		a.scroll.ScrollTo(target, a.doc.MaxScroll(float64(a.height)))
	} else {
		a.scroll.GlideTo(target, a.doc.MaxScroll(float64(a.height)))
	}
	a.log.Debug("nav", "section", s.ID)
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Next()
	a.cfg.Theme = a.theme.Name
	a.sounds.ThemeClick()
	a.saveConfig()
	a.log.Info("theme switched", "theme", a.theme.Name)
}

func (a *App) toggleReducedMotion() {
	a.reduceMotion = !a.reduceMotion
	a.cfg.ReducedMotion = a.reduceMotion
	a.saveConfig()
	if a.reduceMotion {
		a.banner.show(bannerInfo, "Reduced motion on")
	} else {
		a.banner.show(bannerInfo, "Reduced motion off")
	}
	a.log.Info("reduced motion", "on", a.reduceMotion)
}

func (a *App) toggleSound() {
	on := !a.cfg.Sound
	if err := a.sounds.SetEnabled(on); err != nil {
		a.banner.show(bannerError, "Sound unavailable")
		a.log.Warn("sound toggle", "error", err)
		return
	}
	a.cfg.Sound = on
	a.saveConfig()
	if on {
		a.banner.show(bannerInfo, "Sound on")
	} else {
		a.banner.show(bannerInfo, "Sound off")
	}
}

func (a *App) saveConfig() {
	if a.cfgPath == "" {
		return
	}
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.log.Warn("saving config", "error", err)
	}
}

// submit validates and starts the simulated send.
func (a *App) submit() {
	if a.submitter.Pending() {
		return
	}
	if !a.form.Validate() {
		a.banner.show(bannerError, "Please fix the highlighted fields")
		for f := form.FieldName; f < form.FieldCount; f++ {
			if a.form.Errors[f] != "" {
				a.setFocus(focusName + focusID(f))
				break
			}
		}
		return
	}
	a.submitter.Start()
	a.banner.show(bannerInfo, "Sending your message...")
	a.log.Info("submit started")
}

func (a *App) submitSucceeded() {
	name := strings.TrimSpace(a.form.Values[form.FieldName])
	email := strings.TrimSpace(a.form.Values[form.FieldEmail])
	body := strings.TrimSpace(a.form.Values[form.FieldMessage])

	if a.store != nil {
		if m, err := a.store.Add(name, email, body); err != nil {
			a.log.Error("archiving message", "error", err)
		} else {
			a.archived++
			a.log.Info("message archived", "id", m.ID)
		}
	}

	a.form.Reset()
	a.banner.show(bannerSuccess, "Thanks! Your message was sent.")
	a.sounds.SubmitSuccess()
	a.notify("Message sent", "Thanks! Your message was sent.")
	a.log.Info("submit succeeded")
}

func (a *App) submitFailed() {
	a.banner.show(bannerError, "Something went wrong. Please try again.")
	a.sounds.SubmitFailure()
	a.notify("Message not sent", "Something went wrong. Please try again.")
	a.log.Warn("submit failed")
}

// launchConfetti starts (or restarts) the burst. Under reduced motion the
// secret still answers, but with the banner alone.
func (a *App) launchConfetti() {
	if !a.reduceMotion {
		a.burst = particles.NewBurst(
			a.cfg.Particles.Confetti,
			float64(a.width), float64(a.height),
			len(theme.ConfettiPalette),
			a.rng,
		)
		a.sounds.ConfettiPop()
	}
	a.banner.show(bannerInfo, "You found the secret!")
	a.log.Info("konami code entered")
}

// showOutbox surfaces the archive: a count on the banner, recent entries in
// the log.
func (a *App) showOutbox() {
	if a.store == nil {
		a.banner.show(bannerError, "Outbox unavailable")
		return
	}
	msgs, err := a.store.List(3)
	if err != nil {
		a.log.Error("listing outbox", "error", err)
		return
	}
	a.banner.show(bannerInfo, fmt.Sprintf("Outbox: %d archived message(s)", a.archived))
	for _, m := range msgs {
		a.log.Info("outbox entry", "id", m.ID, "from", m.Name, "email", m.Email, "at", m.CreatedAt)
	}
}
