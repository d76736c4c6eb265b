package views

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/hevystats/internal/dashboard"

	"github.com/charmbracelet/lipgloss"
)

var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const barWidth = 40

// Bar scales v against top into a bar of at most width cells. Any positive
// value gets at least one cell.
func Bar(v, top float64, width int) string {
	if v <= 0 || top <= 0 {
		return ""
	}
	n := int(math.Round(v / top * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

func card(label, value string) string {
	return cardStyle.Render(subtleStyle.Render(label) + "\n" + titleStyle.Render(value))
}

func RenderDashboard(w io.Writer, s *dashboard.Summary) error {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Workouts", strconv.Itoa(s.WorkoutsCount)),
		card("Training days", strconv.Itoa(s.TrainingDays)),
		card("Total volume", FormatKg(math.Round(s.TotalVolumeKg))),
		card("Unique exercises", strconv.Itoa(s.UniqueExercises)),
		card("PRs", strconv.Itoa(s.PRCount)),
	)

	var maxVolume float64
	for _, v := range s.VolumeByMonth {
		maxVolume = math.Max(maxVolume, v)
	}

	months := newTable("Month", "Workouts", "Volume", "")
	for i, label := range MonthLabels {
		months.Row(
			label,
			strconv.Itoa(s.WorkoutsByMonth[i]),
			formatFloat(s.VolumeByMonth[i]),
			positiveStyle.Render(Bar(s.VolumeByMonth[i], maxVolume, barWidth)),
		)
	}

	top := newTable("#", "Exercise", "Volume")
	for i, e := range s.TopExercisesByVolume {
		top.Row(strconv.Itoa(i+1), e.ExerciseTitle, FormatKg(e.VolumeKg))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Dashboard %d", s.Year)),
		cards,
		titleStyle.Render("Volume by month"),
		months.String(),
		titleStyle.Render("Top exercises by volume"),
		top.String(),
	)
	return err
}
