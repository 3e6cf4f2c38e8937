package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/misterclayt0n/ftracker/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ftracker",
	Short:         "Fitness tracker: distance, speed and calories from sensor packages",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional.
		_ = godotenv.Load()

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		if noColor {
			cfg.Output.Color = false
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if !cfg.Output.Color {
			color.NoColor = true
		}

		return setupLogging(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Output.Color)
	},
}

func setupLogging(w io.Writer, level string, colored bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("Invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(
		zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !colored || !isTerminal(w),
			TimeFormat: time.RFC3339,
		},
	)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.config/ftracker/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
