package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorYellow = lipgloss.Color("220") // Amber - warnings
)

// =============================================================================
// Icons
// =============================================================================

const iconWarning = "!"

// =============================================================================
// Status Output
// =============================================================================

// styles holds the styles bound to one output stream. Binding a renderer to
// the stream means color is only emitted when that stream is a terminal.
type styles struct {
	iconWarning lipgloss.Style
	warning     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		iconWarning: r.NewStyle().Foreground(colorYellow),
		warning:     r.NewStyle().Foreground(colorYellow),
	}
}

// printWarning prints a "! message" line.
func (s styles) printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, s.iconWarning.Render(iconWarning)+" "+s.warning.Render(msg))
}
