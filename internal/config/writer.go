package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rileyhilliard/tally/internal/errors"
	"gopkg.in/yaml.v3"
)

const starterHeader = `tally configuration.
Run 'tally check' to run every check, or 'tally check <name>...' for some.`

// MarshalYAML writes the timeout as a duration string so the file stays
// readable and round-trips through Load.
func (r RunConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Parallel int    `yaml:"parallel"`
		FailFast bool   `yaml:"fail_fast"`
		Timeout  string `yaml:"timeout"`
	}{
		Parallel: r.Parallel,
		FailFast: r.FailFast,
		Timeout:  r.Timeout.String(),
	}, nil
}

// StarterConfig returns the config 'tally init' writes: defaults plus a few
// example checks for a Go project.
func StarterConfig() *Config {
	cfg := DefaultConfig()
	cfg.Run.Parallel = 4
	cfg.Checks = []CheckConfig{
		{Name: "build", Run: "go build ./...", File: "go.mod"},
		{Name: "vet", Run: "go vet ./..."},
		{Name: "test", Run: "go test ./..."},
	}
	return cfg
}

// Marshal renders cfg as YAML with a header comment.
func Marshal(cfg *Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	doc.HeadComment = starterHeader

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves cfg to path. An existing file is only replaced with force.
func Write(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s already exists", path),
			"Use --force to overwrite it.")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't build the config file",
			"This is unexpected - please report it.")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Couldn't write "+path,
			"Check that the directory exists and is writable.")
	}
	return nil
}
