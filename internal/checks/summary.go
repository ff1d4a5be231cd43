package checks

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/output"
	"github.com/rileyhilliard/tally/internal/ui"
	"github.com/rileyhilliard/tally/internal/util"
)

// OutputTailLines is how many trailing output lines the summary shows for a
// failed check.
const OutputTailLines = 5

// WriteSummary writes one block per failed check followed by a totals line.
// Every line is truncated to width columns. Files that exist are written as
// terminal hyperlinks, and output lines that look like errors are drawn red.
func WriteSummary(w io.Writer, rep *Report, width int) error {
	p := ui.CurrentPalette()

	for _, res := range rep.FailedResults() {
		if err := writeFailure(w, p, res, width); err != nil {
			return err
		}
	}

	line := ui.NewMaxLenWriter(w, width)
	symbol, color := ui.SymbolSuccess, ui.ColorSuccess
	if !rep.Success() {
		symbol, color = ui.SymbolFail, ui.ColorError
	}
	if err := coloredText(line, p, color, symbol); err != nil {
		return err
	}

	total := len(rep.Results)
	text := fmt.Sprintf(" %d %s: %d passed, %d failed", total, util.Pluralize(total, "check", "checks"), rep.Passed, rep.Failed)
	if rep.Skipped > 0 {
		text += fmt.Sprintf(", %d skipped", rep.Skipped)
	}
	text += " in " + formatDuration(rep.Duration)
	if err := line.WriteText(text); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeFailure(w io.Writer, p ui.Palette, res Result, width int) error {
	line := ui.NewMaxLenWriter(w, width)
	if err := coloredText(line, p, ui.ColorError, ui.SymbolFail); err != nil {
		return err
	}
	if err := line.WriteText(" " + res.Check.Name); err != nil {
		return err
	}

	if res.Check.File != "" {
		if path, ok := ui.Canonicalize(res.Check.File); ok {
			if err := line.WriteASCII([]byte(" ")); err != nil {
				return err
			}
			if err := ui.TerminalFileLink(line, res.Check.File, path, ui.ColorSecondary); err != nil {
				return err
			}
		} else if err := line.WriteText(" " + res.Check.File); err != nil {
			return err
		}
	}

	var detail string
	if res.Err != nil {
		detail = " (" + errorDetail(res.Err) + ")"
	} else {
		detail = fmt.Sprintf(" (exit %d)", res.ExitCode)
	}
	if err := line.WriteText(detail); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tail := util.TailLines(string(res.Output), OutputTailLines)
	if tail == "" {
		return nil
	}
	for _, l := range strings.Split(tail, "\n") {
		out := ui.NewMaxLenWriter(w, width)
		color := ui.ColorMuted
		if output.IsErrorLine(l) {
			color = ui.ColorError
		}
		if _, err := io.WriteString(out.Raw(), p.Foreground(color)); err != nil {
			return err
		}
		if err := out.WriteText("    " + l); err != nil {
			return err
		}
		if _, err := io.WriteString(out.Raw(), p.ResetForeground()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func coloredText(w *ui.MaxLenWriter, p ui.Palette, color lipgloss.Color, s string) error {
	if _, err := io.WriteString(w.Raw(), p.Foreground(color)); err != nil {
		return err
	}
	if err := w.WriteText(s); err != nil {
		return err
	}
	_, err := io.WriteString(w.Raw(), p.ResetForeground())
	return err
}

// errorDetail returns a one-line description of err.
func errorDetail(err error) string {
	var tErr *errors.Error
	if stderrors.As(err, &tErr) {
		return tErr.Message
	}
	return firstLine(err.Error())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
