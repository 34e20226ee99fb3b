package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
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

// FitColor returns the style for a budget verdict.
func FitColor(fit domain.BudgetFit) lipgloss.Style {
	switch fit {
	case domain.OverBudget:
		return StyleRed
	case domain.OnBudget:
		return StyleYellow
	case domain.UnderBudget:
		return StyleGreen
	default:
		return StyleDim
	}
}

// FitIndicator returns a colored verdict such as "● UNDER BUDGET".
func FitIndicator(fit domain.BudgetFit) string {
	switch fit {
	case domain.OverBudget:
		return StyleRed.Render("● OVER BUDGET")
	case domain.OnBudget:
		return StyleYellow.Render("● ON BUDGET")
	case domain.UnderBudget:
		return StyleGreen.Render("● UNDER BUDGET")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// TierBadge colors a material tier, brighter for higher tiers.
func TierBadge(tier domain.MaterialTier) string {
	switch tier {
	case domain.TierPremium:
		return StylePurple.Render(string(tier))
	case domain.TierStandard:
		return StyleBlue.Render(string(tier))
	case domain.TierEconomy:
		return StyleFg.Render(string(tier))
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
