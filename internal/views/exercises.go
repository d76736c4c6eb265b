package views

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/exercises"
)

type ExerciseFilter struct {
	Query     string
	Muscle    string
	Equipment string
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func FilterExercises(list []exercises.Exercise, f ExerciseFilter) []exercises.Exercise {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]exercises.Exercise, 0, len(list))
	for _, e := range list {
		if query != "" && !strings.Contains(strings.ToLower(e.ExerciseTitle), query) {
			continue
		}
		if f.Muscle != "" && !hasTag(e.Muscles, f.Muscle) {
			continue
		}
		if f.Equipment != "" && !hasTag(e.Equipment, f.Equipment) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type CatalogStats struct {
	Total         int
	WithMuscles   int
	WithEquipment int
}

func NewCatalogStats(list []exercises.Exercise) CatalogStats {
	stats := CatalogStats{Total: len(list)}
	for _, e := range list {
		if len(e.Muscles) > 0 {
			stats.WithMuscles++
		}
		if len(e.Equipment) > 0 {
			stats.WithEquipment++
		}
	}
	return stats
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return placeholder
	}
	return strings.Join(tags, ", ")
}

// RenderExercises prints the filtered catalog with stats over the full one.
func RenderExercises(w io.Writer, all []exercises.Exercise, f ExerciseFilter) error {
	stats := NewCatalogStats(all)
	filtered := FilterExercises(all, f)

	t := newTable("ID", "Exercise", "Muscles", "Equipment", "Template")
	for _, e := range filtered {
		t.Row(strconv.Itoa(e.ID), e.ExerciseTitle, joinTags(e.Muscles), joinTags(e.Equipment), e.ExerciseTemplateID)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), subtleStyle.Render(fmt.Sprintf(
		"showing %d of %d | with muscles %d | with equipment %d",
		len(filtered), stats.Total, stats.WithMuscles, stats.WithEquipment,
	)))
	return err
}

func RenderProgress(w io.Writer, p *exercises.Progress, loc *time.Location) error {
	var maxWeight float64
	for _, pt := range p.Series {
		if pt.WeightKg != nil {
			maxWeight = math.Max(maxWeight, *pt.WeightKg)
		}
	}

	t := newTable("Date", "Best weight", "Reps", "")
	for _, pt := range p.Series {
		date := pt.Date
		var bar string
		if pt.WeightKg != nil {
			bar = positiveStyle.Render(Bar(*pt.WeightKg, maxWeight, barWidth))
		}
		t.Row(FormatDate(&date, loc), formatOptKg(pt.WeightKg), formatOptInt(pt.Reps), bar)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		titleStyle.Render(p.ExerciseTitle),
		subtleStyle.Render(fmt.Sprintf("%s .. %s | %d workouts | %d sets", p.From, p.To, p.Summary.WorkoutsCount, p.Summary.TotalSets)),
		t.String(),
	)
	return err
}
