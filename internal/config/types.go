package config

// ThemeName selects one of the built-in palettes.
type ThemeName string

const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// Config is the top-level deskfolio configuration, corresponding to
// deskfolio.yml. Every field can be overridden with a DESKFOLIO_* environment
// variable (DESKFOLIO_THEME, DESKFOLIO_SUBMIT_SUCCESS_RATE, ...); envKeys in
// config.go lists the full set.
type Config struct {
	Theme                ThemeName      `yaml:"theme" koanf:"theme"`
	ReducedMotion        bool           `yaml:"reduced_motion" koanf:"reduced_motion"`
	Sound                bool           `yaml:"sound" koanf:"sound"`
	DesktopNotifications bool           `yaml:"desktop_notifications" koanf:"desktop_notifications"`
	Seed                 int64          `yaml:"seed" koanf:"seed"`
	OutboxPath           string         `yaml:"outbox_path" koanf:"outbox_path"`
	Window               WindowConfig   `yaml:"window" koanf:"window"`
	Particles            ParticleConfig `yaml:"particles" koanf:"particles"`
	Submit               SubmitConfig   `yaml:"submit" koanf:"submit"`
	Logging              LogConfig      `yaml:"logging" koanf:"logging"`
}

// WindowConfig holds initial window geometry.
type WindowConfig struct {
	Width      int  `yaml:"width" koanf:"width"`
	Height     int  `yaml:"height" koanf:"height"`
	Fullscreen bool `yaml:"fullscreen" koanf:"fullscreen"`
}

// ParticleConfig sizes the two particle collections.
type ParticleConfig struct {
	Ambient  int `yaml:"ambient" koanf:"ambient"`
	Confetti int `yaml:"confetti" koanf:"confetti"`
}

// SubmitConfig tunes the simulated contact-form submission.
type SubmitConfig struct {
	DelayMS     int     `yaml:"delay_ms" koanf:"delay_ms"`
	SuccessRate float64 `yaml:"success_rate" koanf:"success_rate"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level    string `yaml:"level" koanf:"level"`         // debug, info, warn, error
	File     string `yaml:"file" koanf:"file"`           // empty = stderr
	MaxSize  int    `yaml:"max_size" koanf:"max_size"`   // MB per file
	MaxFiles int    `yaml:"max_files" koanf:"max_files"` // rotated files to keep
}
