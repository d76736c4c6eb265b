package exercises

import (
	"strings"
	"time"
)

type Exercise struct {
	ID                 int      `json:"id"`
	ExerciseTitle      string   `json:"exercise_title"`
	ExerciseTemplateID string   `json:"exercise_template_id"`
	Muscles            []string `json:"muscles"`
	Equipment          []string `json:"equipment"`
}

// UpdateParams replaces the non-nil tag lists. An empty list clears the tags.
type UpdateParams struct {
	Muscles   *[]string `json:"muscles"`
	Equipment *[]string `json:"equipment"`
}

type ProgressSet struct {
	WorkoutID     string
	WorkoutDate   time.Time
	ExerciseTitle string
	SetIndex      int
	WeightKg      *float64
	Reps          *int
}

type ProgressPoint struct {
	Date      time.Time `json:"date"`
	WorkoutID string    `json:"workout_id"`
	WeightKg  *float64  `json:"weight_kg"`
	Reps      *int      `json:"reps"`
	SetIndex  int       `json:"set_index"`
}

type ProgressSummary struct {
	TotalSets     int `json:"total_sets"`
	WorkoutsCount int `json:"workouts_count"`
}

type Progress struct {
	ExerciseTemplateID string          `json:"exercise_template_id"`
	ExerciseTitle      string          `json:"exercise_title"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	Summary            ProgressSummary `json:"summary"`
	Series             []ProgressPoint `json:"series"`
}

// NormalizeTags trims and lower-cases names, dropping empty and repeated ones.
func NormalizeTags(names []string) []string {
	out := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func repsOrMinus(r *int) int {
	if r == nil {
		return -1
	}
	return *r
}

// betterProgressSet ranks by weight, then reps, then the later set index.
func betterProgressSet(a, b ProgressSet) bool {
	if *a.WeightKg != *b.WeightKg {
		return *a.WeightKg > *b.WeightKg
	}
	if ra, rb := repsOrMinus(a.Reps), repsOrMinus(b.Reps); ra != rb {
		return ra > rb
	}
	return a.SetIndex > b.SetIndex
}

// BuildProgress summarizes sets ordered by workout date. The series holds the
// best weighted set of each workout.
func BuildProgress(sets []ProgressSet) (ProgressSummary, []ProgressPoint) {
	summary := ProgressSummary{TotalSets: len(sets)}

	var order []string
	seen := map[string]bool{}
	best := map[string]ProgressSet{}
	for _, s := range sets {
		if !seen[s.WorkoutID] {
			seen[s.WorkoutID] = true
			order = append(order, s.WorkoutID)
		}
		if s.WeightKg == nil {
			continue
		}
		if curr, ok := best[s.WorkoutID]; !ok || betterProgressSet(s, curr) {
			best[s.WorkoutID] = s
		}
	}
	summary.WorkoutsCount = len(order)

	series := make([]ProgressPoint, 0, len(best))
	for _, workoutID := range order {
		s, ok := best[workoutID]
		if !ok {
			continue
		}
		series = append(series, ProgressPoint{
			Date:      s.WorkoutDate,
			WorkoutID: s.WorkoutID,
			WeightKg:  s.WeightKg,
			Reps:      s.Reps,
			SetIndex:  s.SetIndex,
		})
	}

	return summary, series
}
