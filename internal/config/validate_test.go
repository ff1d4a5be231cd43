package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/tally/internal/checks"
	"github.com/rileyhilliard/tally/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *Config) {},
		},
		{
			name: "checks are valid",
			modify: func(cfg *Config) {
				cfg.Checks = []CheckConfig{{Name: "a", Run: "true"}, {Name: "b", Run: "false"}}
			},
		},
		{
			name:    "future version",
			modify:  func(cfg *Config) { cfg.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "bad color",
			modify:  func(cfg *Config) { cfg.Output.Color = "rainbow" },
			wantErr: "output.color",
		},
		{
			name:    "negative width",
			modify:  func(cfg *Config) { cfg.Output.Width = -1 },
			wantErr: "output.width",
		},
		{
			name:    "bad log level",
			modify:  func(cfg *Config) { cfg.Log.Level = "loud" },
			wantErr: "log.level",
		},
		{
			name:   "log level is case insensitive",
			modify: func(cfg *Config) { cfg.Log.Level = "DEBUG" },
		},
		{
			name:    "negative parallel",
			modify:  func(cfg *Config) { cfg.Run.Parallel = -2 },
			wantErr: "run.parallel",
		},
		{
			name:    "negative timeout",
			modify:  func(cfg *Config) { cfg.Run.Timeout = -time.Second },
			wantErr: "run.timeout",
		},
		{
			name:    "tiny timeout",
			modify:  func(cfg *Config) { cfg.Run.Timeout = time.Microsecond },
			wantErr: "too short",
		},
		{
			name: "missing name",
			modify: func(cfg *Config) {
				cfg.Checks = []CheckConfig{{Name: " ", Run: "true"}}
			},
			wantErr: "check 1 needs a 'name'",
		},
		{
			name: "missing run",
			modify: func(cfg *Config) {
				cfg.Checks = []CheckConfig{{Name: "a"}}
			},
			wantErr: "needs a 'run' command",
		},
		{
			name: "duplicate names",
			modify: func(cfg *Config) {
				cfg.Checks = []CheckConfig{{Name: "a", Run: "x"}, {Name: "b", Run: "y"}, {Name: "a", Run: "z"}}
			},
			wantErr: "defined twice (entries 1 and 3)",
		},
		{
			name: "unexpanded variable",
			modify: func(cfg *Config) {
				cfg.Checks = []CheckConfig{{Name: "a", Run: "x", Dir: "${BRANCH}/src"}}
			},
			wantErr: "unexpanded variable",
		},
		{
			name: "too many checks",
			modify: func(cfg *Config) {
				for i := 0; i <= checks.MaxChecks; i++ {
					cfg.Checks = append(cfg.Checks, CheckConfig{Name: fmt.Sprintf("c%d", i), Run: "true"})
				}
			},
			wantErr: "at most 999",
		},
		{
			name: "exactly the maximum is fine",
			modify: func(cfg *Config) {
				for i := 0; i < checks.MaxChecks; i++ {
					cfg.Checks = append(cfg.Checks, CheckConfig{Name: fmt.Sprintf("c%d", i), Run: "true"})
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
