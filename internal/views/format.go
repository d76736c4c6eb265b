package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const placeholder = "-"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717A"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EE7B7"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDA4AF"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3F3F46")).
			Padding(0, 2)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(subtleStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func FormatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return placeholder
	}
	if loc != nil {
		return t.In(loc).Format("02 Jan 2006")
	}
	return t.Format("02 Jan 2006")
}

// FormatDuration rounds to minutes: "1h 05m", "45m".
func FormatDuration(seconds *int) string {
	if seconds == nil || *seconds <= 0 {
		return placeholder
	}
	m := int(math.Round(float64(*seconds) / 60))
	if h := m / 60; h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m%60)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatKg drops the decimals of whole numbers.
func FormatKg(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " kg"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func formatOptInt(v *int) string {
	if v == nil {
		return placeholder
	}
	return strconv.Itoa(*v)
}

func formatOptKg(v *float64) string {
	if v == nil {
		return placeholder
	}
	return FormatKg(*v)
}

// FormatDelta prints a signed value, green when positive and red when negative.
func FormatDelta(v float64, suffix string) string {
	s := formatFloat(v) + suffix
	switch {
	case v > 0:
		return positiveStyle.Render("+" + s)
	case v < 0:
		return negativeStyle.Render(s)
	default:
		return subtleStyle.Render(s)
	}
}

// WorkoutTitle falls back to a placeholder for untitled workouts.
func WorkoutTitle(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return "Untitled"
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
