package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to create the config in (default: current)
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt; fail if the file exists
}

// confirmOverwrite asks whether to replace an existing config. Swapped out
// in tests.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Init creates a new .tally.yaml configuration file with example checks.
func Init(out io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	overwrite := opts.Overwrite
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		ok, err := confirmOverwrite(configPath)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		overwrite = true
	}

	if err := config.Write(configPath, config.StarterConfig(), overwrite); err != nil {
		return err
	}

	check := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
	fmt.Fprintf(out, "%s Created %s\n\n", check, configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  edit the checks in "+config.ConfigFileName)
	fmt.Fprintln(out, "  tally check         - Run every check")
	fmt.Fprintln(out, "  tally check <name>  - Run some of them")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(out io.Writer, force bool) error {
	return Init(out, InitOptions{
		Overwrite:      force,
		NonInteractive: !isTerminal(os.Stdin),
	})
}
