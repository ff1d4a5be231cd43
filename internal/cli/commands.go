package cli

import (
	"os"

	"github.com/rileyhilliard/tally/internal/config"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	barPending    int
	barFailed     int
	barSuccess    int
	barTotal      int
	checkParallel int
	checkFailFast bool
	checkTimeout  string
	checkPause    bool
	checkClear    bool
	linkLabel     string
	demoScenario  string
	initForce     bool
)

// barCmd draws one progress line from explicit counts
var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Draw a single progress line",
	Long: `Draw one progress line from explicit counts and exit.

Failed checks are drawn red, passed green and in-flight blue, followed by
a '>' marker and the remaining work. Lines narrower than 24 columns fall
back to "Progress: done/total".

Examples:
  tally bar --success 12 --total 100
  tally bar --failed 2 --success 40 --pending 3 --total 60
  tally bar --success 5 --total 10 --width 40`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Bar(cmd.OutOrStdout(), BarOptions{
			Pending: barPending,
			Failed:  barFailed,
			Success: barSuccess,
			Total:   barTotal,
			Width:   lineWidth(cmd.OutOrStdout()),
		})
	},
}

// checkCmd runs the configured checks
var checkCmd = &cobra.Command{
	Use:   "check [names...]",
	Short: "Run checks with a live progress line",
	Long: `Run the checks from .tally.yaml and keep a progress line up to date
while they run. Failed checks are listed afterwards with the tail of their
output; checks with a 'file' link to it.

Exits 1 if any check failed.

Examples:
  tally check
  tally check build test
  tally check --parallel 8 --fail-fast
  tally check --timeout 2m --pause`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		// Completion runs without the root pre-run hook.
		cfg, _, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return config.CheckNames(cfg), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := CheckOptions{
			Names: args,
			Clear: checkClear,
			Pause: checkPause,
		}
		if cmd.Flags().Changed("parallel") {
			opts.Parallel = &checkParallel
		}
		if cmd.Flags().Changed("fail-fast") {
			opts.FailFast = &checkFailFast
		}
		if cmd.Flags().Changed("timeout") {
			d, err := parseTimeout(checkTimeout)
			if err != nil {
				return err
			}
			opts.Timeout = &d
		}
		return checkCommand(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

// linkCmd prints a terminal hyperlink to a file
var linkCmd = &cobra.Command{
	Use:   "link <path>",
	Short: "Print a clickable link to a file",
	Long: `Print an OSC 8 hyperlink to a file. Terminals that support it show
the label underlined and open the file on click; others show the label.

Examples:
  tally link go.mod
  tally link --label "the readme" README.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Link(cmd.OutOrStdout(), LinkOptions{
			Path:  args[0],
			Label: linkLabel,
			Width: lineWidth(cmd.OutOrStdout()),
		})
	},
}

// demoCmd animates the progress line with simulated checks
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Animate the progress line with simulated checks",
	Long: `Play a simulated run so you can see how the progress line behaves.
Without --scenario you get to pick one. Press q to stop.

Examples:
  tally demo
  tally demo --scenario large`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(cmd.InOrStdin(), cmd.OutOrStdout(), demoScenario)
	},
}

// initCmd creates a new .tally.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .tally.yaml configuration",
	Long: `Create a .tally.yaml in the current directory with a few example
checks to start from.

Examples:
  tally init
  tally init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd.OutOrStdout(), initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for tally.

Examples:
  # Bash
  tally completion bash > /etc/bash_completion.d/tally

  # Zsh
  tally completion zsh > "${fpath[1]}/_tally"

  # Fish
  tally completion fish > ~/.config/fish/completions/tally.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// bar command flags
	barCmd.Flags().IntVar(&barPending, "pending", 0, "checks in flight")
	barCmd.Flags().IntVar(&barFailed, "failed", 0, "checks that failed")
	barCmd.Flags().IntVar(&barSuccess, "success", 0, "checks that passed")
	barCmd.Flags().IntVar(&barTotal, "total", 0, "total number of checks (below 1000)")
	_ = barCmd.MarkFlagRequired("total")

	// check command flags
	checkCmd.Flags().IntVarP(&checkParallel, "parallel", "j", 0, "checks to run at once (default from config)")
	checkCmd.Flags().BoolVar(&checkFailFast, "fail-fast", false, "stop starting checks after the first failure")
	checkCmd.Flags().StringVar(&checkTimeout, "timeout", "", "per-check timeout (e.g., 30s, 5m, 0 for none)")
	checkCmd.Flags().BoolVar(&checkPause, "pause", false, "wait for Enter after the summary")
	checkCmd.Flags().BoolVar(&checkClear, "clear", false, "clear the terminal before running")

	// link command flags
	linkCmd.Flags().StringVar(&linkLabel, "label", "", "text to show instead of the path")

	// demo command flags
	demoCmd.Flags().StringVar(&demoScenario, "scenario", "", "scenario to play (all-pass, some-failures, half-failing, large)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(barCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
