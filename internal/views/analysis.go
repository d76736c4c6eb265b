package views

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/2beens/hevystats/internal/analysis"
)

type MuscleCount struct {
	Muscle string
	Count  int
}

// SortedMuscleCounts orders by count desc, then name.
func SortedMuscleCounts(counts map[string]int) []MuscleCount {
	out := make([]MuscleCount, 0, len(counts))
	for m, c := range counts {
		out = append(out, MuscleCount{Muscle: m, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Muscle < out[j].Muscle
	})
	return out
}

func RenderAnalysis(w io.Writer, s *analysis.Summary) error {
	radar := newTable("Group", "Current", "Previous", "Δ")
	for _, g := range analysis.RadarGroups {
		cur, prev := s.Radar.Current[g], s.Radar.Previous[g]
		radar.Row(g, strconv.Itoa(cur), strconv.Itoa(prev), FormatDelta(float64(cur-prev), ""))
	}

	counts := SortedMuscleCounts(s.MuscleCounts)
	var maxCount float64
	if len(counts) > 0 {
		maxCount = float64(counts[0].Count)
	}
	muscles := newTable("Muscle", "Workouts", "")
	for _, mc := range counts {
		muscles.Row(mc.Muscle, strconv.Itoa(mc.Count), positiveStyle.Render(Bar(float64(mc.Count), maxCount, barWidth)))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Analysis %s .. %s", s.From, s.To)),
		subtleStyle.Render(fmt.Sprintf("previous %s .. %s | workouts %d vs %d",
			s.PreviousFrom, s.PreviousTo, s.Meta.WorkoutsCurrent, s.Meta.WorkoutsPrevious)),
		radar.String(),
		titleStyle.Render("Muscles"),
		muscles.String(),
	)
	return err
}
