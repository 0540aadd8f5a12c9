package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/tempo/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the style for an entry kind: plans are blue, actuals
// green, shared purple.
func KindStyle(kind domain.EntryKind) lipgloss.Style {
	switch kind {
	case domain.KindPlan:
		return StyleBlue
	case domain.KindActual:
		return StyleGreen
	case domain.KindShared:
		return StylePurple
	default:
		return StyleDim
	}
}

// EntryMarker renders the leading marker for an entry row. Provisional
// actuals carry a tilde until confirmed.
func EntryMarker(e *domain.Entry) string {
	if e.Provisional {
		return StyleYellow.Render("~")
	}
	return KindStyle(e.Kind).Render("●")
}
