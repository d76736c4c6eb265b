package analysis

import (
	"strings"
	"time"
)

const (
	GroupChest     = "chest"
	GroupBack      = "back"
	GroupShoulders = "shoulders"
	GroupArms      = "arms"
	GroupAbs       = "abs"
	GroupLegs      = "legs"
	GroupOther     = "other"
)

var RadarGroups = []string{GroupChest, GroupBack, GroupShoulders, GroupArms, GroupAbs, GroupLegs}

// muscle names are matched lower-cased; Italian catalog names map to the same groups
var muscleGroups = map[string]string{
	"chest":        GroupChest,
	"petto":        GroupChest,
	"back":         GroupBack,
	"schiena":      GroupBack,
	"shoulders":    GroupShoulders,
	"spalle":       GroupShoulders,
	"abs":          GroupAbs,
	"addome":       GroupAbs,
	"biceps":       GroupArms,
	"triceps":      GroupArms,
	"forearms":     GroupArms,
	"bicipiti":     GroupArms,
	"tricipiti":    GroupArms,
	"avambracci":   GroupArms,
	"quads":        GroupLegs,
	"quadriceps":   GroupLegs,
	"hamstrings":   GroupLegs,
	"glutes":       GroupLegs,
	"calves":       GroupLegs,
	"quadricipiti": GroupLegs,
	"femorali":     GroupLegs,
	"glutei":       GroupLegs,
	"polpacci":     GroupLegs,
}

func GroupOf(muscle string) string {
	if g, ok := muscleGroups[strings.ToLower(strings.TrimSpace(muscle))]; ok {
		return g
	}
	return GroupOther
}

// WorkoutMuscle is one muscle trained by one workout, possibly repeated.
type WorkoutMuscle struct {
	WorkoutID string
	Muscle    string
}

type Counts struct {
	MuscleCounts  map[string]int
	Radar         map[string]int
	WorkoutsCount int
}

func emptyRadar() map[string]int {
	radar := make(map[string]int, len(RadarGroups))
	for _, g := range RadarGroups {
		radar[g] = 0
	}
	return radar
}

// CountMuscles counts each muscle at most once per workout. Only workouts with
// at least one tagged muscle are counted.
func CountMuscles(rows []WorkoutMuscle) Counts {
	perWorkout := map[string]map[string]struct{}{}
	for _, row := range rows {
		m := strings.ToLower(strings.TrimSpace(row.Muscle))
		if m == "" {
			continue
		}
		muscles, ok := perWorkout[row.WorkoutID]
		if !ok {
			muscles = map[string]struct{}{}
			perWorkout[row.WorkoutID] = muscles
		}
		muscles[m] = struct{}{}
	}

	c := Counts{
		MuscleCounts:  map[string]int{},
		Radar:         emptyRadar(),
		WorkoutsCount: len(perWorkout),
	}
	for _, muscles := range perWorkout {
		for m := range muscles {
			c.MuscleCounts[m]++
			if g := GroupOf(m); g != GroupOther {
				c.Radar[g]++
			}
		}
	}

	return c
}

// PreviousRange returns the same number of days ending the day before from.
func PreviousRange(from, to time.Time) (prevFrom, prevTo time.Time) {
	days := daysBetween(from, to) + 1
	prevTo = from.AddDate(0, 0, -1)
	prevFrom = prevTo.AddDate(0, 0, -(days - 1))
	return prevFrom, prevTo
}

// daysBetween counts calendar days, so DST shifts do not matter.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
