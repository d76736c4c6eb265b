package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/compare"
	"github.com/2beens/hevystats/internal/workouts"
)

// ExerciseGroup holds the sets of one exercise in a workout.
type ExerciseGroup struct {
	Key   string
	Title string
	Sets  []workouts.Set
}

// GroupSets groups sets by exercise key keeping the order in which exercises
// first appear.
func GroupSets(sets []workouts.Set) []ExerciseGroup {
	var groups []ExerciseGroup
	index := make(map[string]int)
	for _, s := range sets {
		key := compare.ExerciseKey(s)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			title := strings.TrimSpace(s.ExerciseTitle)
			if title == "" {
				title = key
			}
			groups = append(groups, ExerciseGroup{Key: key, Title: title})
		}
		groups[i].Sets = append(groups[i].Sets, s)
	}
	return groups
}

func typeNames(types []workouts.Type) map[int]string {
	names := make(map[int]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names
}

func RenderWorkouts(w io.Writer, list []workouts.Workout, types []workouts.Type, loc *time.Location) error {
	names := typeNames(types)

	t := newTable("Date", "Title", "Duration", "Type", "Ignored", "ID")
	for _, wo := range list {
		typeName := placeholder
		if wo.TypeID != nil {
			if n, ok := names[*wo.TypeID]; ok {
				typeName = n
			} else {
				typeName = "#" + strconv.Itoa(*wo.TypeID)
			}
		}
		ignored := ""
		if wo.Ignored {
			ignored = "yes"
		}
		t.Row(
			FormatDate(wo.Date, loc),
			WorkoutTitle(wo.Title),
			FormatDuration(wo.DurationSeconds),
			typeName,
			ignored,
			wo.ID,
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), subtleStyle.Render(fmt.Sprintf("%d workouts", len(list))))
	return err
}

// RenderWorkoutDetail prints the sets grouped by exercise and, when cmp is
// not nil, the comparison with the most recent workout of the same title.
func RenderWorkoutDetail(w io.Writer, d *workouts.Detail, cmp *compare.Comparison, loc *time.Location) error {
	groups := GroupSets(d.Sets)

	header := fmt.Sprintf("%s\n%s",
		titleStyle.Render(WorkoutTitle(d.Title)),
		subtleStyle.Render(fmt.Sprintf("%s | duration %s | %d exercises | volume %s | id %s",
			FormatDate(d.Date, loc),
			FormatDuration(d.DurationSeconds),
			len(groups),
			FormatKg(compare.WorkoutVolume(d)),
			shortID(d.ID),
		)),
	)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, g := range groups {
		t := newTable("Set", "Weight", "Reps", "Type")
		for _, s := range g.Sets {
			setType := placeholder
			if s.SetType != nil && *s.SetType != "" {
				setType = *s.SetType
			}
			t.Row(strconv.Itoa(s.SetIndex+1), formatOptKg(s.WeightKg), formatOptInt(s.Reps), setType)
		}
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", titleStyle.Render(g.Title), t.String()); err != nil {
			return err
		}
	}

	if cmp == nil {
		return nil
	}
	if cmp.Last == nil {
		_, err := fmt.Fprintf(w, "\n%s\n", subtleStyle.Render("no other workout with the same title to compare with"))
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return RenderComparison(w, cmp, loc)
}

func formatSide(s *compare.Side) string {
	if s == nil {
		return placeholder
	}
	return fmt.Sprintf("%s x %d", FormatKg(s.BestWeightKg), s.BestReps)
}

func RenderComparison(w io.Writer, cmp *compare.Comparison, loc *time.Location) error {
	describe := func(label string, wo *workouts.Workout, volume float64) string {
		if wo == nil {
			return fmt.Sprintf("%s: %s", label, placeholder)
		}
		return fmt.Sprintf("%s: %s (%s) volume %s", label, WorkoutTitle(wo.Title), FormatDate(wo.Date, loc), FormatKg(volume))
	}

	t := newTable("Exercise", "Last best", "Prev best", "Δ kg", "Δ reps", "Δ volume")
	for _, r := range cmp.Rows {
		t.Row(
			r.Title,
			formatSide(r.Last),
			formatSide(r.Prev),
			FormatDelta(r.DeltaWeightKg, ""),
			FormatDelta(float64(r.DeltaReps), ""),
			FormatDelta(r.DeltaVolumeKg, ""),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n",
		titleStyle.Render("Comparison"),
		describe("last", cmp.Last, cmp.LastVolumeKg),
		describe("prev", cmp.Prev, cmp.PrevVolumeKg),
		"total volume delta: "+FormatDelta(cmp.LastVolumeKg-cmp.PrevVolumeKg, " kg"),
		t.String(),
	)
	return err
}
