package cli

import (
	"io"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/ui"
)

// LinkOptions controls 'tally link'.
type LinkOptions struct {
	Path  string
	Label string // Defaults to Path
	Width int
}

// Link prints a clickable file:// link for a path.
func Link(out io.Writer, opts LinkOptions) error {
	canonical, ok := ui.Canonicalize(opts.Path)
	if !ok {
		return errors.New(errors.ErrInput,
			"Can't resolve "+opts.Path,
			"Check that the file exists.")
	}

	label := opts.Label
	if label == "" {
		label = opts.Path
	}

	w := ui.NewMaxLenWriter(out, opts.Width)
	if err := ui.TerminalFileLink(w, label, canonical, ui.ColorSecondary); err != nil {
		return errors.Wrap(err, "Couldn't write the link")
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return errors.Wrap(err, "Couldn't write the link")
	}
	return nil
}
