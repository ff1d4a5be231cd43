package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Color modes for output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete .tally.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Run     RunConfig     `yaml:"run" mapstructure:"run"`
	Checks  []CheckConfig `yaml:"checks" mapstructure:"checks"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Width of the progress line in columns. 0 uses the terminal width.
	Width int `yaml:"width" mapstructure:"width"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error. TALLY_DEBUG overrides it.
	Level string `yaml:"level" mapstructure:"level"`
}

// RunConfig holds defaults for 'tally check'. Flags override them.
type RunConfig struct {
	// Parallel is the number of checks run at once. 0 means one at a time.
	Parallel int `yaml:"parallel" mapstructure:"parallel"`

	// FailFast stops starting new checks after the first failure.
	FailFast bool `yaml:"fail_fast" mapstructure:"fail_fast"`

	// Timeout per check. 0 means no timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CheckConfig defines one named check.
type CheckConfig struct {
	// Name identifies the check in output and on the command line.
	Name string `yaml:"name" mapstructure:"name"`

	// Run is the shell command. Exit status 0 passes.
	Run string `yaml:"run" mapstructure:"run"`

	// File is an optional path the check is about. Failed checks link to it.
	File string `yaml:"file,omitempty" mapstructure:"file"`

	// Dir is the working directory. Relative paths resolve against the
	// directory holding the config file.
	Dir string `yaml:"dir,omitempty" mapstructure:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Output: OutputConfig{
			Color: ColorAuto,
			Width: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Run: RunConfig{
			Parallel: 1,
			FailFast: false,
			Timeout:  10 * time.Minute,
		},
		Checks: []CheckConfig{},
	}
}
