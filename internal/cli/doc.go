// Package cli implements the tally command-line interface.
//
// Each Cobra command is a thin wrapper: flags are parsed in commands.go and
// the work happens in a plain function (Bar, Link, RunChecks, Init) that
// takes its writers explicitly, so tests can drive it without a terminal.
//
// # Command Structure
//
//	tally bar      - Draw one progress line from explicit counts
//	tally check    - Run configured checks behind a live progress line
//	tally link     - Print an OSC 8 link to a file
//	tally demo     - Animate the progress line with simulated checks
//	tally init     - Create .tally.yaml
//	tally version  - Print version information
//
// # Global Flags
//
// --config, --no-color and --width are defined on the root command. The
// root pre-run hook loads the config once, sets up the default logger and
// picks the color profile; a config that fails to load only fails the
// commands that need it.
//
// # Exit Codes
//
// 'tally check' exits 1 when a check failed. The summary has already been
// printed by then, so the command returns an ExitError and Execute exits
// without printing anything else.
package cli
