package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/tally/internal/checks"
	"github.com/rileyhilliard/tally/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but tally only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade tally to read this file.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .tally.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'log' section in your .tally.yaml.")
	}

	if err := validateRun(cfg.Run); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'run' section in your .tally.yaml.")
	}

	if err := validateChecks(cfg.Checks); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'checks' list in your .tally.yaml.")
	}

	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	if out.Width < 0 {
		return fmt.Errorf("output.width can't be negative (got %d) - use 0 to detect the terminal width", out.Width)
	}
	return nil
}

// validateLog checks log configuration.
func validateLog(l LogConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true, "": true}
	if !validLevels[strings.ToLower(strings.TrimSpace(l.Level))] {
		return fmt.Errorf("log.level '%s' isn't valid - use 'debug', 'info', 'warn', or 'error'", l.Level)
	}
	return nil
}

// validateRun checks run defaults.
func validateRun(r RunConfig) error {
	if r.Parallel < 0 {
		return fmt.Errorf("run.parallel can't be negative (got %d)", r.Parallel)
	}
	if r.Timeout < 0 {
		return fmt.Errorf("run.timeout can't be negative - use 0 for no timeout")
	}
	if r.Timeout > 0 && r.Timeout < time.Millisecond {
		return fmt.Errorf("run.timeout %v is too short to run anything", r.Timeout)
	}
	return nil
}

// validateChecks checks the check list.
func validateChecks(list []CheckConfig) error {
	if len(list) > checks.MaxChecks {
		return fmt.Errorf("%d checks configured but tally can track at most %d", len(list), checks.MaxChecks)
	}

	seen := make(map[string]int, len(list))
	for i, c := range list {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("check %d needs a 'name'", i+1)
		}
		if strings.TrimSpace(c.Run) == "" {
			return fmt.Errorf("check '%s' needs a 'run' command", c.Name)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("check '%s' is defined twice (entries %d and %d)", name, prev+1, i+1)
		}
		if strings.Contains(c.Dir, "${") || strings.Contains(c.File, "${") {
			return fmt.Errorf("check '%s' has an unexpanded variable - supported ones are ${PROJECT}, ${USER} and ${HOME}", name)
		}
		seen[name] = i
	}
	return nil
}
