package ui

import (
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// OSC 8 hyperlink framing.
const (
	hyperlinkOpen  = termenv.OSC + "8;;"
	hyperlinkClose = termenv.OSC + "8;;" + termenv.ST
)

// TerminalFileLink writes label as an underlined, colored OSC 8 link to
// file://canonicalPath. Only the label is visible and counted against the
// writer's budget; it is truncated like any other WriteText call.
func TerminalFileLink(w CountedWriter, label, canonicalPath string, color lipgloss.Color) error {
	p := CurrentPalette()
	raw := w.Raw()

	if _, err := io.WriteString(raw, p.Foreground(color)+p.Underline()); err != nil {
		return err
	}
	if _, err := io.WriteString(raw, hyperlinkOpen+"file://"+canonicalPath+termenv.ST); err != nil {
		return err
	}
	if err := w.WriteText(label); err != nil {
		return err
	}
	if _, err := io.WriteString(raw, hyperlinkClose); err != nil {
		return err
	}
	_, err := io.WriteString(raw, p.ResetForeground()+p.NoUnderline())
	return err
}

// Canonicalize returns the absolute, symlink-free form of path, or false if
// the path can't be resolved (e.g. it doesn't exist).
func Canonicalize(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	if runtime.GOOS == "windows" {
		// Windows itself can't handle its verbatim paths.
		resolved = strings.TrimPrefix(resolved, `\\?\`)
	}
	return resolved, true
}
