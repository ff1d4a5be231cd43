package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/tally/internal/errors"
)

func configWithChecks(names ...string) *Config {
	cfg := DefaultConfig()
	for _, n := range names {
		cfg.Checks = append(cfg.Checks, CheckConfig{Name: n, Run: "echo " + n})
	}
	return cfg
}

func TestCheckNames(t *testing.T) {
	assert.Equal(t, []string{"build", "test"}, CheckNames(configWithChecks("build", "test")))
	assert.Empty(t, CheckNames(DefaultConfig()))
}

func TestSelectChecks(t *testing.T) {
	cfg := configWithChecks("build", "lint", "test")

	tests := []struct {
		name     string
		cfg      *Config
		names    []string
		want     []string
		wantErr  string
		wantHint string
	}{
		{
			name:  "no names selects all",
			cfg:   cfg,
			names: nil,
			want:  []string{"build", "lint", "test"},
		},
		{
			name:  "keeps requested order",
			cfg:   cfg,
			names: []string{"test", "build"},
			want:  []string{"test", "build"},
		},
		{
			name:     "typo suggests similar",
			cfg:      cfg,
			names:    []string{"tset"},
			wantErr:  "No check named 'tset'",
			wantHint: "Did you mean: test?",
		},
		{
			name:     "unknown lists available",
			cfg:      cfg,
			names:    []string{"deploy"},
			wantErr:  "No check named 'deploy'",
			wantHint: "Available checks: build, lint, test",
		},
		{
			name:    "no checks configured",
			cfg:     DefaultConfig(),
			wantErr: "No checks defined",
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "hasn't been loaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectChecks(tt.cfg, tt.names)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				assert.Contains(t, err.Error(), tt.wantErr)
				if tt.wantHint != "" {
					assert.Contains(t, err.Error(), tt.wantHint)
				}
				return
			}
			require.NoError(t, err)
			names := make([]string, len(got))
			for i, c := range got {
				names[i] = c.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
