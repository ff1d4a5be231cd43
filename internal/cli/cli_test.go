package cli

import (
	"testing"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/ui"
)

// useASCII turns colors off for the duration of a test.
func useASCII(t *testing.T) {
	t.Helper()
	ui.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { ui.SetColorProfile(termenv.ANSI) })
}

// withGlobals restores the root command's package state after a test.
func withGlobals(t *testing.T) {
	t.Helper()
	oldCfg, oldPath, oldErr := loadedConfig, loadedPath, loadErr
	oldWidth, oldNoColor, oldFile := widthFlag, noColor, cfgFile
	t.Cleanup(func() {
		loadedConfig, loadedPath, loadErr = oldCfg, oldPath, oldErr
		widthFlag, noColor, cfgFile = oldWidth, oldNoColor, oldFile
	})
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func testConfig(checks ...config.CheckConfig) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Checks = checks
	return cfg
}
