package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// envKeys maps DESKFOLIO_* environment variables to configuration keys. Key
// names carry underscores of their own (reduced_motion, submit.success_rate),
// so the variable name cannot be split mechanically; the mapping is spelled
// out, and variables outside it are ignored.
var envKeys = map[string]string{
	"DESKFOLIO_THEME":                 "theme",
	"DESKFOLIO_REDUCED_MOTION":        "reduced_motion",
	"DESKFOLIO_SOUND":                 "sound",
	"DESKFOLIO_DESKTOP_NOTIFICATIONS": "desktop_notifications",
	"DESKFOLIO_SEED":                  "seed",
	"DESKFOLIO_OUTBOX_PATH":           "outbox_path",
	"DESKFOLIO_WINDOW_WIDTH":          "window.width",
	"DESKFOLIO_WINDOW_HEIGHT":         "window.height",
	"DESKFOLIO_WINDOW_FULLSCREEN":     "window.fullscreen",
	"DESKFOLIO_PARTICLES_AMBIENT":     "particles.ambient",
	"DESKFOLIO_PARTICLES_CONFETTI":    "particles.confetti",
	"DESKFOLIO_SUBMIT_DELAY_MS":       "submit.delay_ms",
	"DESKFOLIO_SUBMIT_SUCCESS_RATE":   "submit.success_rate",
	"DESKFOLIO_LOGGING_LEVEL":         "logging.level",
	"DESKFOLIO_LOGGING_FILE":          "logging.file",
	"DESKFOLIO_LOGGING_MAX_SIZE":      "logging.max_size",
	"DESKFOLIO_LOGGING_MAX_FILES":     "logging.max_files",
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DESKFOLIO_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("DESKFOLIO_", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. Used to persist
// runtime changes such as the theme toggle.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized theme values.
var validThemes = map[ThemeName]bool{
	ThemeDark:  true,
	ThemeLight: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be dark or light", c.Theme)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Particles.Ambient < 0 {
		return fmt.Errorf("particles.ambient must be non-negative")
	}
	if c.Particles.Confetti < 0 {
		return fmt.Errorf("particles.confetti must be non-negative")
	}
	if c.Submit.DelayMS < 0 {
		return fmt.Errorf("submit.delay_ms must be non-negative")
	}
	if c.Submit.SuccessRate < 0 || c.Submit.SuccessRate > 1 {
		return fmt.Errorf("submit.success_rate must be in [0,1], got %v", c.Submit.SuccessRate)
	}
	if c.OutboxPath == "" {
		return fmt.Errorf("outbox_path is required")
	}
	return nil
}
