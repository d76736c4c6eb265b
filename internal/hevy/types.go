package hevy

import (
	"encoding/json"
	"time"
)

type Page struct {
	PageCount int
	Workouts  []Workout
}

type Workout struct {
	ID              string
	Title           string
	Date            *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	DurationSeconds *int
	Exercises       []Exercise
	Raw             json.RawMessage
}

type Exercise struct {
	Title      string
	TemplateID *string
	Sets       []Set
}

type Set struct {
	// Index is the 1-based position of the set inside its exercise.
	Index           int
	Reps            *int
	WeightKg        *float64
	DistanceMeters  *float64
	DurationSeconds *int
	SetType         *string
	Raw             json.RawMessage
}

func (w *Workout) SetsCount() int {
	count := 0
	for _, e := range w.Exercises {
		count += len(e.Sets)
	}
	return count
}
