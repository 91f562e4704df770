package cmd

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/deskfolio/internal/app"
	"github.com/iburimskiy/deskfolio/internal/config"
	"github.com/iburimskiy/deskfolio/internal/logging"
)

var (
	cfgFile           string
	flagTheme         string
	flagReducedMotion bool
	flagWindowed      bool
	flagSeed          int64
	flagOutbox        string
)

var rootCmd = &cobra.Command{
	Use:   "deskfolio",
	Short: "Ilya Burimskiy's portfolio as a desktop app",
	Long: `Deskfolio renders a one-page portfolio in a window: themed sections,
scroll-spy navigation, an ambient particle background and a contact form
whose sent messages are archived locally. Settings persist to the config
file, so the theme you leave with is the theme you come back to.`,
	SilenceUsage: true,
	RunE:         run,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "deskfolio.yml", "config file path")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "start with this theme (dark or light)")
	rootCmd.Flags().BoolVar(&flagReducedMotion, "reduced-motion", false, "disable animated effects")
	rootCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "force windowed mode")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, 0 picks one")
	rootCmd.Flags().StringVar(&flagOutbox, "outbox", "", "outbox database path")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags beat both the file and the environment.
	if flagTheme != "" {
		cfg.Theme = config.ThemeName(flagTheme)
	}
	if cmd.Flags().Changed("reduced-motion") {
		cfg.ReducedMotion = flagReducedMotion
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagOutbox != "" {
		cfg.OutboxPath = flagOutbox
	}
	if flagWindowed {
		cfg.Window.Fullscreen = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logging.New(cfg.Logging)

	a := app.New(cfg, cfgFile, log)
	defer a.Close()

	ebiten.SetWindowTitle("Ilya Burimskiy - Portfolio")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running deskfolio: %w", err)
	}
	return nil
}
