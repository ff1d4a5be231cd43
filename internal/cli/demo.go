package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/rileyhilliard/tally/internal/util"
)

// defaultScenario plays when no scenario is given and there's no terminal
// to ask on.
const defaultScenario = "some-failures"

// pickScenario asks which scenario to play. Swapped out in tests.
var pickScenario = func() (string, error) {
	options := make([]huh.Option[string], 0, len(ui.Scenarios))
	for _, s := range ui.Scenarios {
		label := fmt.Sprintf("%s (%d checks)", s.Name, s.Total)
		options = append(options, huh.NewOption(label, s.Name))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a scenario").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// resolveScenario turns the --scenario flag into a Scenario, prompting when
// it is empty and interactive is set.
func resolveScenario(name string, interactive bool) (ui.Scenario, error) {
	if name == "" {
		if !interactive {
			name = defaultScenario
		} else {
			picked, err := pickScenario()
			if err != nil {
				return ui.Scenario{}, errors.WrapWithCode(err, errors.ErrInput,
					"Failed to get user input",
					"Pass --scenario to skip the picker.")
			}
			name = picked
		}
	}

	s, ok := ui.FindScenario(name)
	if !ok {
		return ui.Scenario{}, errors.New(errors.ErrInput,
			fmt.Sprintf("No scenario named '%s'", name),
			"Available scenarios: "+util.JoinOrNone(ui.ScenarioNames()))
	}
	return s, nil
}

// demoCommand is the implementation called by the cobra command.
func demoCommand(in io.Reader, out io.Writer, scenario string) error {
	s, err := resolveScenario(scenario, isTerminal(os.Stdin))
	if err != nil {
		return err
	}

	m, err := ui.RunDemo(s, lineWidth(out), out, in)
	if err != nil {
		return err
	}
	if m.Quitting() {
		fmt.Fprintln(out, "Stopped.")
	}
	return nil
}
