package records

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Metric string

const (
	MetricMaxWeight       Metric = "max_weight"
	MetricE1RM            Metric = "e1rm"
	MetricMaxWeightAtReps Metric = "max_weight_at_reps"
)

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case "":
		return MetricMaxWeight, nil
	case MetricMaxWeight, MetricE1RM, MetricMaxWeightAtReps:
		return m, nil
	default:
		return "", fmt.Errorf("unknown metric: %q", s)
	}
}

// SetRow is a weighted set of a non-ignored workout.
type SetRow struct {
	ExerciseTitle      string
	ExerciseTemplateID *string
	WeightKg           float64
	Reps               *int
	WorkoutID          string
	WorkoutTitle       string
	WorkoutDate        *time.Time
}

type Record struct {
	ExerciseTitle      string     `json:"exercise_title"`
	Metric             Metric     `json:"metric"`
	Value              float64    `json:"value"`
	Reps               *int       `json:"reps"`
	Date               *time.Time `json:"date"`
	WorkoutID          string     `json:"workout_id"`
	WorkoutTitle       string     `json:"workout_title"`
	ExerciseTemplateID *string    `json:"exercise_template_id"`
}

// Epley estimated one rep max.
func E1RM(weightKg float64, reps int) float64 {
	return weightKg * (1 + float64(reps)/30)
}

// ExerciseKey is the template id, else the lower-cased trimmed title, else "unknown".
func ExerciseKey(row SetRow) string {
	if row.ExerciseTemplateID != nil && *row.ExerciseTemplateID != "" {
		return *row.ExerciseTemplateID
	}
	if title := strings.ToLower(strings.TrimSpace(row.ExerciseTitle)); title != "" {
		return title
	}
	return "unknown"
}

// score returns false when the row does not qualify for the metric.
func score(row SetRow, metric Metric, reps *int) (float64, bool) {
	if row.WeightKg <= 0 {
		return 0, false
	}
	switch metric {
	case MetricMaxWeightAtReps:
		if reps == nil || row.Reps == nil || *row.Reps != *reps {
			return 0, false
		}
		return row.WeightKg, true
	case MetricE1RM:
		if row.Reps == nil || *row.Reps <= 0 {
			return 0, false
		}
		return E1RM(row.WeightKg, *row.Reps), true
	default:
		return row.WeightKg, true
	}
}

func repsOf(r *int) int {
	if r == nil {
		return 0
	}
	return *r
}

// Compute keeps the best row per exercise and returns the records sorted by
// value desc. A strictly greater score replaces the current best; for
// max_weight an equal weight with more reps does too.
func Compute(rows []SetRow, metric Metric, reps *int) []Record {
	best := map[string]*Record{}
	var keys []string

	for _, row := range rows {
		value, ok := score(row, metric, reps)
		if !ok {
			continue
		}

		key := ExerciseKey(row)
		curr, exists := best[key]
		if exists {
			better := value > curr.Value ||
				(metric == MetricMaxWeight && value == curr.Value && repsOf(row.Reps) > repsOf(curr.Reps))
			if !better {
				continue
			}
		} else {
			keys = append(keys, key)
		}

		title := strings.TrimSpace(row.ExerciseTitle)
		if title == "" {
			title = "Unknown"
		}
		best[key] = &Record{
			ExerciseTitle:      title,
			Metric:             metric,
			Value:              value,
			Reps:               row.Reps,
			Date:               row.WorkoutDate,
			WorkoutID:          row.WorkoutID,
			WorkoutTitle:       row.WorkoutTitle,
			ExerciseTemplateID: row.ExerciseTemplateID,
		}
	}

	out := make([]Record, 0, len(keys))
	for _, key := range keys {
		out = append(out, *best[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	return out
}

// CountSetIn counts the records whose date falls in [from, before).
func CountSetIn(recs []Record, from, before time.Time) int {
	count := 0
	for _, rec := range recs {
		if rec.Date != nil && !rec.Date.Before(from) && rec.Date.Before(before) {
			count++
		}
	}
	return count
}
