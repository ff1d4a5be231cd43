package ui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/tally/internal/errors"
)

// SpinnerFrames defines the animation frames (◐ ◓ ◑ ◒) used next to the bar.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// Scenario describes a simulated run for the demo program.
type Scenario struct {
	Name        string
	Total       int           // Number of simulated checks
	Concurrency int           // Checks in flight at once (shown as pending)
	FailEvery   int           // Every n-th finished check fails, 0 = none
	Step        time.Duration // Time between simulated completions
}

// Built-in demo scenarios.
var Scenarios = []Scenario{
	{Name: "all-pass", Total: 40, Concurrency: 3, FailEvery: 0, Step: 120 * time.Millisecond},
	{Name: "some-failures", Total: 60, Concurrency: 4, FailEvery: 7, Step: 100 * time.Millisecond},
	{Name: "half-failing", Total: 25, Concurrency: 2, FailEvery: 2, Step: 150 * time.Millisecond},
	{Name: "large", Total: 999, Concurrency: 16, FailEvery: 50, Step: 10 * time.Millisecond},
}

// FindScenario looks up a built-in scenario by name.
func FindScenario(name string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// ScenarioNames returns the names of the built-in scenarios.
func ScenarioNames() []string {
	names := make([]string, 0, len(Scenarios))
	for _, s := range Scenarios {
		names = append(names, s.Name)
	}
	return names
}

// demoStepMsg advances the simulation by one completion.
type demoStepMsg struct{}

// ProgressModel is a Bubble Tea model that animates a progress line for a
// Scenario. The bar is rendered through Direct since the view string is
// already sized to the window.
type ProgressModel struct {
	scenario Scenario
	spinner  spinner.Model
	width    int

	started  int
	finished int
	failed   int
	quitting bool
}

// NewProgressModel creates a demo model for the scenario.
func NewProgressModel(s Scenario, width int) ProgressModel {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	m := ProgressModel{
		scenario: s,
		spinner:  sp,
		width:    width,
	}
	m.fill()
	return m
}

// Init starts the spinner and the simulation clock.
func (m ProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextStep())
}

func (m ProgressModel) nextStep() tea.Cmd {
	return tea.Tick(m.scenario.Step, func(time.Time) tea.Msg { return demoStepMsg{} })
}

// Update handles window size, keys, spinner ticks and simulation steps.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case demoStepMsg:
		m.step()
		if m.Done() {
			return m, tea.Quit
		}
		return m, m.nextStep()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// step finishes the oldest in-flight check and starts new ones.
func (m *ProgressModel) step() {
	if m.Pending() > 0 {
		m.finished++
		if m.scenario.FailEvery > 0 && m.finished%m.scenario.FailEvery == 0 {
			m.failed++
		}
	}
	m.fill()
}

func (m *ProgressModel) fill() {
	concurrency := max(m.scenario.Concurrency, 1)
	for m.started < m.scenario.Total && m.Pending() < concurrency {
		m.started++
	}
}

// Pending returns the number of in-flight checks.
func (m ProgressModel) Pending() int { return m.started - m.finished }

// Failed returns the number of failed checks.
func (m ProgressModel) Failed() int { return m.failed }

// Succeeded returns the number of passed checks.
func (m ProgressModel) Succeeded() int { return m.finished - m.failed }

// Done reports whether every check has finished.
func (m ProgressModel) Done() bool { return m.finished >= m.scenario.Total }

// Quitting reports whether the user aborted the demo.
func (m ProgressModel) Quitting() bool { return m.quitting }

// View renders the status glyph followed by the progress line.
func (m ProgressModel) View() string {
	var b strings.Builder

	switch {
	case m.Done() && m.failed > 0:
		b.WriteString(lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail))
	case m.Done():
		b.WriteString(lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolSuccess))
	default:
		b.WriteString(m.spinner.View())
	}
	b.WriteByte(' ')

	// The glyph and its space take two columns.
	lineWidth := max(m.width-2, 0)
	// Writes into a strings.Builder can't fail.
	_ = ProgressBarWithSuccess(Direct{W: &b}, m.Pending(), m.failed, m.Succeeded(), m.scenario.Total, lineWidth)
	b.WriteByte('\n')

	if !m.Done() && !m.quitting {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("q to quit"))
		b.WriteByte('\n')
	}
	return b.String()
}

// RunDemo plays a scenario until it finishes or the user quits. Returns the
// final model so callers can report how it ended.
func RunDemo(s Scenario, width int, output io.Writer, input io.Reader) (ProgressModel, error) {
	p := tea.NewProgram(
		NewProgressModel(s, width),
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ProgressModel{}, errors.WrapWithCode(err, errors.ErrIO,
			"Demo failed",
			"Try running again, or pass --scenario to skip the picker.")
	}

	m, _ := finalModel.(ProgressModel)
	return m, nil
}
