package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/logger"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultWidth is used when the output isn't a terminal and no width is set.
const defaultWidth = 80

// Global flags
var (
	cfgFile   string
	noColor   bool
	widthFlag int
)

// Loaded once per invocation by the root pre-run hook. A broken config only
// fails the commands that need it.
var (
	loadedConfig *config.Config
	loadedPath   string
	loadErr      error
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally - run checks behind a live progress bar",
	Long: `Tally runs a list of shell checks and keeps a single progress line
up to date while they run: failed, passed and in-flight checks each get
their own colored segment.

Checks live in .tally.yaml. Run 'tally init' to create one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedConfig, loadedPath, loadErr = config.LoadOrDefault(cfgFile)

		cfg := loadedConfig
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		level := logger.LevelFromEnv(logger.ParseLevel(cfg.Log.Level))
		logger.SetDefault(logger.New(os.Stderr, "[tally]", level))
		if loadedPath != "" {
			logger.Default().Debug("using config %s", loadedPath)
		}

		applyColorMode(cfg.Output.Color, cmd.OutOrStdout())
		return nil
	},
}

// Execute runs the root command and exits with the right status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, strings.TrimRight(err.Error(), "\n"))
		os.Exit(1)
	}
}

// requireConfig returns the loaded config, or the error that kept it from
// loading.
func requireConfig() (*config.Config, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	if loadedConfig == nil {
		return config.DefaultConfig(), nil
	}
	if err := config.Validate(loadedConfig); err != nil {
		return nil, err
	}
	return loadedConfig, nil
}

// applyColorMode picks the color profile for this run. --no-color and
// NO_COLOR win over the config; "auto" turns colors off when out isn't a
// terminal.
func applyColorMode(mode string, out io.Writer) {
	switch {
	case noColor, os.Getenv("NO_COLOR") != "":
		ui.DisableColors()
	case mode == config.ColorNever:
		ui.DisableColors()
	case mode == config.ColorAlways:
		ui.SetColorProfile(termenv.ANSI)
	case !isTerminal(out):
		ui.DisableColors()
	default:
		ui.SetColorProfile(termenv.ANSI)
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w interface{}) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// lineWidth resolves the progress line width: --width, then output.width,
// then the terminal size, then defaultWidth.
func lineWidth(out io.Writer) int {
	if widthFlag > 0 {
		return widthFlag
	}
	if loadedConfig != nil && loadedConfig.Output.Width > 0 {
		return loadedConfig.Output.Width
	}
	if f, ok := out.(interface{ Fd() uintptr }); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .tally.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVar(&widthFlag, "width", 0, "line width in columns (0 = terminal width)")
}
