package app

// bannerTicks keeps a banner up for four seconds at 60 TPS.
const bannerTicks = 240

type bannerLevel int

const (
	bannerInfo bannerLevel = iota
	bannerSuccess
	bannerError
)

// banner is the transient status strip under the header. Showing a new
// message replaces the current one and restarts the clock.
type banner struct {
	text      string
	level     bannerLevel
	remaining int
}

func (b *banner) show(level bannerLevel, text string) {
	b.level = level
	b.text = text
	b.remaining = bannerTicks
}

func (b *banner) update() {
	if b.remaining > 0 {
		b.remaining--
	}
}

func (b *banner) visible() bool { return b.remaining > 0 }
