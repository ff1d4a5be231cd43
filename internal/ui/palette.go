package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SGR parameters termenv does not name.
const (
	defaultForegroundSeq = "39"
	noUnderlineSeq       = "24"
)

// Palette turns colors and attributes into raw escape sequences for a
// termenv color profile. With the Ascii profile every sequence is empty.
type Palette struct {
	profile termenv.Profile
}

// NewPalette creates a palette for the given profile.
func NewPalette(profile termenv.Profile) Palette {
	return Palette{profile: profile}
}

// Profile returns the palette's color profile.
func (p Palette) Profile() termenv.Profile {
	return p.profile
}

// Enabled reports whether the palette emits any escape sequences.
func (p Palette) Enabled() bool {
	return p.profile != termenv.Ascii
}

// Foreground returns the sequence that sets the foreground color.
func (p Palette) Foreground(c lipgloss.Color) string {
	if !p.Enabled() {
		return ""
	}
	col := p.profile.Color(string(c))
	if col == nil {
		return ""
	}
	seq := col.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// ResetForeground returns the sequence that restores the default foreground.
func (p Palette) ResetForeground() string {
	return p.sgr(defaultForegroundSeq)
}

// Underline returns the sequence that turns underlining on.
func (p Palette) Underline() string {
	return p.sgr(termenv.UnderlineSeq)
}

// NoUnderline returns the sequence that turns underlining off.
func (p Palette) NoUnderline() string {
	return p.sgr(noUnderlineSeq)
}

func (p Palette) sgr(param string) string {
	if !p.Enabled() {
		return ""
	}
	return termenv.CSI + param + "m"
}

var (
	paletteMu     sync.RWMutex
	activePalette = NewPalette(termenv.ANSI)
)

// CurrentPalette returns the palette used by the renderers in this package.
func CurrentPalette() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return activePalette
}

// SetColorProfile switches both the package palette and lipgloss to profile.
func SetColorProfile(profile termenv.Profile) {
	paletteMu.Lock()
	activePalette = NewPalette(profile)
	paletteMu.Unlock()
	lipgloss.SetColorProfile(profile)
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	SetColorProfile(termenv.Ascii)
}
