package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/workouts"
	"github.com/2beens/hevystats/pkg"
)

const topExercisesLimit = 5

type SetRow struct {
	ExerciseTitle string
	WeightKg      *float64
	Reps          *int
	WorkoutDate   *time.Time
}

type ExerciseVolume struct {
	ExerciseTitle string  `json:"exercise_title"`
	VolumeKg      float64 `json:"volume_kg"`
}

type Summary struct {
	Year                 int              `json:"year"`
	WorkoutsCount        int              `json:"workouts_count"`
	TrainingDays         int              `json:"training_days"`
	TotalVolumeKg        float64          `json:"total_volume_kg"`
	UniqueExercises      int              `json:"unique_exercises"`
	PRCount              int              `json:"pr_count"`
	VolumeByMonth        [12]float64      `json:"volume_by_month"`
	WorkoutsByMonth      [12]int          `json:"workouts_by_month"`
	TopExercisesByVolume []ExerciseVolume `json:"top_exercises_by_volume"`
}

func setVolume(s SetRow) float64 {
	if s.WeightKg == nil || s.Reps == nil || *s.WeightKg <= 0 || *s.Reps <= 0 {
		return 0
	}
	return *s.WeightKg * float64(*s.Reps)
}

// Summarize aggregates the non-ignored workouts of a year and their sets.
// Days and months are taken in loc.
func Summarize(year int, loc *time.Location, ws []workouts.Workout, sets []SetRow, prCount int) Summary {
	s := Summary{
		Year:                 year,
		WorkoutsCount:        len(ws),
		PRCount:              prCount,
		TopExercisesByVolume: []ExerciseVolume{},
	}

	days := map[string]struct{}{}
	for _, w := range ws {
		if w.Date == nil {
			continue
		}
		local := w.Date.In(loc)
		days[local.Format(pkg.DateLayout)] = struct{}{}
		s.WorkoutsByMonth[local.Month()-1]++
	}
	s.TrainingDays = len(days)

	var volumeByMonth [12]float64
	total := 0.0
	names := map[string]struct{}{}
	byExercise := map[string]*ExerciseVolume{}
	for _, set := range sets {
		name := strings.ToLower(strings.TrimSpace(set.ExerciseTitle))
		if name != "" {
			names[name] = struct{}{}
		}

		v := setVolume(set)
		if v == 0 {
			continue
		}
		total += v
		if set.WorkoutDate != nil {
			volumeByMonth[set.WorkoutDate.In(loc).Month()-1] += v
		}
		if name == "" {
			continue
		}
		ev, ok := byExercise[name]
		if !ok {
			ev = &ExerciseVolume{ExerciseTitle: strings.TrimSpace(set.ExerciseTitle)}
			byExercise[name] = ev
		}
		ev.VolumeKg += v
	}

	s.TotalVolumeKg = pkg.RoundTo2(total)
	s.UniqueExercises = len(names)
	for i, v := range volumeByMonth {
		s.VolumeByMonth[i] = pkg.RoundTo2(v)
	}

	for _, ev := range byExercise {
		s.TopExercisesByVolume = append(s.TopExercisesByVolume, ExerciseVolume{
			ExerciseTitle: ev.ExerciseTitle,
			VolumeKg:      pkg.RoundTo2(ev.VolumeKg),
		})
	}
	sort.Slice(s.TopExercisesByVolume, func(i, j int) bool {
		a, b := s.TopExercisesByVolume[i], s.TopExercisesByVolume[j]
		if a.VolumeKg != b.VolumeKg {
			return a.VolumeKg > b.VolumeKg
		}
		return a.ExerciseTitle < b.ExerciseTitle
	})
	if len(s.TopExercisesByVolume) > topExercisesLimit {
		s.TopExercisesByVolume = s.TopExercisesByVolume[:topExercisesLimit]
	}

	return s
}
