package formatter

import (
	"fmt"
	"strings"

	"github.com/cadence-sh/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// CognitiveColor returns the lipgloss style for a cognitive load class.
func CognitiveColor(ct domain.CognitiveType) lipgloss.Style {
	switch ct {
	case domain.CogDeep:
		return StyleRed
	case domain.CogCreative:
		return StylePurple
	case domain.CogLearning:
		return StyleBlue
	case domain.CogShallow:
		return StyleYellow
	case domain.CogAdmin:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CognitiveBadge returns a colored, human-readable cognitive type label.
func CognitiveBadge(ct domain.CognitiveType) string {
	label := strings.ToUpper(strings.ReplaceAll(string(ct), "_", " "))
	if label == "" {
		label = "--"
	}
	return CognitiveColor(ct).Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
