package compare

import (
	"regexp"
	"sort"
	"strings"

	"github.com/2beens/hevystats/internal/workouts"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Side is the best set and total volume of one exercise in one workout.
type Side struct {
	BestWeightKg float64 `json:"best_weight_kg"`
	BestReps     int     `json:"best_reps"`
	VolumeKg     float64 `json:"volume_kg"`
}

type Row struct {
	Key           string  `json:"key"`
	Title         string  `json:"title"`
	Last          *Side   `json:"last"`
	Prev          *Side   `json:"prev"`
	DeltaWeightKg float64 `json:"delta_weight_kg"`
	DeltaReps     int     `json:"delta_reps"`
	DeltaVolumeKg float64 `json:"delta_volume_kg"`
}

func weight(s workouts.Set) float64 {
	if s.WeightKg == nil {
		return 0
	}
	return *s.WeightKg
}

func reps(s workouts.Set) int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

// SetVolume is weight x reps, or 0 unless both are positive.
func SetVolume(s workouts.Set) float64 {
	w, r := weight(s), reps(s)
	if w > 0 && r > 0 {
		return w * float64(r)
	}
	return 0
}

func WorkoutVolume(d *workouts.Detail) float64 {
	if d == nil {
		return 0
	}
	total := 0.0
	for _, s := range d.Sets {
		total += SetVolume(s)
	}
	return total
}

// BestSet picks max weight, then max reps, then max volume. The earliest set
// wins a full tie. Returns nil for no sets.
func BestSet(sets []workouts.Set) *workouts.Set {
	var best *workouts.Set
	for i := range sets {
		s := &sets[i]
		if best == nil {
			best = s
			continue
		}
		bw, sw := weight(*best), weight(*s)
		if sw != bw {
			if sw > bw {
				best = s
			}
			continue
		}
		br, sr := reps(*best), reps(*s)
		if sr != br {
			if sr > br {
				best = s
			}
			continue
		}
		if SetVolume(*s) > SetVolume(*best) {
			best = s
		}
	}
	return best
}

// NormalizeTitle trims, lower-cases and collapses inner whitespace.
func NormalizeTitle(title string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), " ")
}

// ExerciseKey is the template id when known, the normalized title otherwise.
func ExerciseKey(s workouts.Set) string {
	if s.ExerciseTemplateID != nil && *s.ExerciseTemplateID != "" {
		return *s.ExerciseTemplateID
	}
	return NormalizeTitle(s.ExerciseTitle)
}

type group struct {
	keys []string
	sets map[string][]workouts.Set
}

func groupByExercise(d *workouts.Detail) group {
	g := group{sets: map[string][]workouts.Set{}}
	if d == nil {
		return g
	}
	for _, s := range d.Sets {
		key := ExerciseKey(s)
		if _, ok := g.sets[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.sets[key] = append(g.sets[key], s)
	}
	return g
}

func side(sets []workouts.Set) *Side {
	sd := &Side{}
	if best := BestSet(sets); best != nil {
		sd.BestWeightKg = weight(*best)
		sd.BestReps = reps(*best)
	}
	for _, s := range sets {
		sd.VolumeKg += SetVolume(s)
	}
	return sd
}

// Compare builds one row per exercise found in either workout. A nil workout
// leaves its side empty and counts as zero in the deltas.
func Compare(last, prev *workouts.Detail) []Row {
	lastGroup := groupByExercise(last)
	prevGroup := groupByExercise(prev)

	keys := append([]string{}, lastGroup.keys...)
	for _, k := range prevGroup.keys {
		if _, ok := lastGroup.sets[k]; !ok {
			keys = append(keys, k)
		}
	}

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		lastSets := lastGroup.sets[key]
		prevSets := prevGroup.sets[key]
		lastSide := side(lastSets)
		prevSide := side(prevSets)

		row := Row{
			Key:           key,
			Title:         rowTitle(key, lastSets, prevSets),
			DeltaWeightKg: lastSide.BestWeightKg - prevSide.BestWeightKg,
			DeltaReps:     lastSide.BestReps - prevSide.BestReps,
			DeltaVolumeKg: lastSide.VolumeKg - prevSide.VolumeKg,
		}
		if last != nil {
			row.Last = lastSide
		}
		if prev != nil {
			row.Prev = prevSide
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DeltaVolumeKg != rows[j].DeltaVolumeKg {
			return rows[i].DeltaVolumeKg > rows[j].DeltaVolumeKg
		}
		return strings.ToLower(rows[i].Title) < strings.ToLower(rows[j].Title)
	})

	return rows
}

func rowTitle(key string, lastSets, prevSets []workouts.Set) string {
	if len(lastSets) > 0 && lastSets[0].ExerciseTitle != "" {
		return lastSets[0].ExerciseTitle
	}
	if len(prevSets) > 0 && prevSets[0].ExerciseTitle != "" {
		return prevSets[0].ExerciseTitle
	}
	return key
}
