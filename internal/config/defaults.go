package config

// Default window and simulation parameters. Runtime behavior is tuned here;
// geometry constants that define the page itself live with the packages that
// own them.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800

	DefaultAmbientCount  = 60
	DefaultConfettiCount = 140

	DefaultSubmitDelayMS     = 2000
	DefaultSubmitSuccessRate = 0.9
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:                ThemeDark,
		ReducedMotion:        false,
		Sound:                true,
		DesktopNotifications: true,
		Seed:                 0, // 0 = seed from wall clock
		OutboxPath:           "deskfolio.db",
		Window: WindowConfig{
			Width:      DefaultWindowWidth,
			Height:     DefaultWindowHeight,
			Fullscreen: false,
		},
		Particles: ParticleConfig{
			Ambient:  DefaultAmbientCount,
			Confetti: DefaultConfettiCount,
		},
		Submit: SubmitConfig{
			DelayMS:     DefaultSubmitDelayMS,
			SuccessRate: DefaultSubmitSuccessRate,
		},
		Logging: LogConfig{
			Level:    "info",
			File:     "",
			MaxSize:  10,
			MaxFiles: 5,
		},
	}
}
