package config

import (
	"fmt"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/util"
)

// CheckNames returns the configured check names in file order.
func CheckNames(cfg *Config) []string {
	names := make([]string, 0, len(cfg.Checks))
	for _, c := range cfg.Checks {
		names = append(names, c.Name)
	}
	return names
}

// SelectChecks returns the checks with the given names, in the order asked
// for. No names selects every check.
func SelectChecks(cfg *Config, names []string) ([]CheckConfig, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrConfig,
			"Config hasn't been loaded yet",
			"This is unexpected - load a config before looking up checks.")
	}

	if len(cfg.Checks) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No checks defined in config",
			"Add some checks to your .tally.yaml under 'checks:' or run 'tally init'.")
	}

	if len(names) == 0 {
		return cfg.Checks, nil
	}

	byName := make(map[string]CheckConfig, len(cfg.Checks))
	for _, c := range cfg.Checks {
		byName[c.Name] = c
	}

	selected := make([]CheckConfig, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			available := CheckNames(cfg)
			hint := fmt.Sprintf("Available checks: %s", util.JoinOrNone(available))
			if similar := util.SuggestSimilar(name, available, 3); len(similar) > 0 {
				hint = fmt.Sprintf("Did you mean: %s?", util.JoinOrNone(similar))
			}
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("No check named '%s'", name),
				hint)
		}
		selected = append(selected, c)
	}
	return selected, nil
}
