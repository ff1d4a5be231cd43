package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/tally/internal/errors"
)

func TestStarterConfigIsValid(t *testing.T) {
	cfg := StarterConfig()
	assert.NoError(t, Validate(cfg))
	assert.NotEmpty(t, cfg.Checks)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(StarterConfig())
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "# tally configuration."))
	assert.Contains(t, s, "timeout: 10m0s")
	assert.Contains(t, s, "fail_fast: false")
	assert.Contains(t, s, "  - name: build")
	assert.Contains(t, s, "    file: go.mod")
	// Empty optional fields are left out.
	assert.NotContains(t, s, "dir:")
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	want := StarterConfig()
	want.Run.Timeout = 45 * time.Second
	want.Output.Color = ColorNever
	require.NoError(t, Write(path, want, false))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, want.Version, got.Version)
	assert.Equal(t, want.Output, got.Output)
	assert.Equal(t, want.Run, got.Run)
	require.Len(t, got.Checks, len(want.Checks))
	for i := range want.Checks {
		assert.Equal(t, want.Checks[i].Name, got.Checks[i].Name)
		assert.Equal(t, want.Checks[i].Run, got.Checks[i].Run)
	}
}

func TestWrite_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0644))

	err := Write(path, StarterConfig(), false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	require.NoError(t, Write(path, StarterConfig(), true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "checks:")
}

func TestWrite_UnwritableDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", ConfigFileName), StarterConfig(), false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}
