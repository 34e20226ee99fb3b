package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// SavedAgo describes when a plan was saved relative to now.
func SavedAgo(t time.Time) string {
	return SavedAgoFrom(t, time.Now())
}

// SavedAgoFrom is SavedAgo against a fixed reference time.
func SavedAgoFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 14*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 60*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// ModifierList renders applied modifiers as purple lowercase tags, or a
// dim dash when there are none.
func ModifierList(mods []domain.Modifier) string {
	if len(mods) == 0 {
		return StyleDim.Render("--")
	}
	tags := make([]string, len(mods))
	for i, m := range mods {
		tags[i] = StylePurple.Render(strings.ToLower(string(m)))
	}
	return strings.Join(tags, " ")
}

// FloorName labels floor indices the way a builder would.
func FloorName(i int) string {
	switch i {
	case 0:
		return "Ground floor"
	case 1:
		return "First floor"
	case 2:
		return "Second floor"
	default:
		return fmt.Sprintf("Floor %d", i)
	}
}
