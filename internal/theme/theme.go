package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/timegraph/internal/geom"
)

// Styles describes reusable Lip Gloss styles shared across the UI chrome.
type Styles struct {
	Header            *lipgloss.Style
	HeaderDim         *lipgloss.Style
	Footer            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Warning           *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterText        *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

// Palette holds the colours the canvas composites primitives onto. They are
// geom colours because blending happens before any style is applied.
type Palette struct {
	Background  geom.Color
	Tooltip     geom.Color
	TooltipText geom.Color
	Empty       geom.Color
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true),
	),
	HeaderDim: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
}

var defaultPalette = Palette{
	Background:  geom.RGBA(24, 24, 28, 255),
	Tooltip:     geom.RGBA(48, 48, 56, 255),
	TooltipText: geom.RGBA(230, 230, 230, 255),
	Empty:       geom.RGBA(120, 120, 120, 255),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Colors exposes the canvas palette.
func Colors() Palette {
	return defaultPalette
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
