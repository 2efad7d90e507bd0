package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/minsukang/stagegate/internal/domain"
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

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders text in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// BucketStyle returns the style for a deadline bucket.
func BucketStyle(b domain.DeadlineBucket) lipgloss.Style {
	switch b {
	case domain.BucketOverdue:
		return StyleRed
	case domain.BucketToday:
		return StyleYellow
	case domain.BucketUpcoming:
		return StyleBlue
	case domain.BucketCompleted:
		return StyleGreen
	}
	return StyleDim
}

// BucketIndicator returns a colored bucket indicator such as "● OVERDUE".
func BucketIndicator(b domain.DeadlineBucket) string {
	switch b {
	case domain.BucketOverdue:
		return StyleRed.Render("● OVERDUE")
	case domain.BucketToday:
		return StyleYellow.Render("● TODAY")
	case domain.BucketUpcoming:
		return StyleBlue.Render("● UPCOMING")
	case domain.BucketCompleted:
		return StyleGreen.Render("● DONE")
	}
	return StyleDim.Render("● UNKNOWN")
}

// CategoryStyle returns the style for an event category.
func CategoryStyle(c domain.EventCategory) lipgloss.Style {
	switch c {
	case domain.CategoryLaunch:
		return StyleHeader
	case domain.CategoryProduction:
		return StylePurple
	case domain.CategoryQuality:
		return StyleYellow
	case domain.CategoryService:
		return StyleBlue
	}
	return StyleDim
}
