package workouts

import (
	"time"
)

type Workout struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Date            *time.Time `json:"date"`
	DurationSeconds *int       `json:"duration_seconds"`
	Ignored         bool       `json:"ignored"`
	TypeID          *int       `json:"type_id"`
}

type Set struct {
	WorkoutID          string   `json:"workout_id"`
	ExerciseTitle      string   `json:"exercise_title"`
	ExerciseTemplateID *string  `json:"exercise_template_id"`
	SetIndex           int      `json:"set_index"`
	Reps               *int     `json:"reps"`
	WeightKg           *float64 `json:"weight_kg"`
	DistanceMeters     *float64 `json:"distance_meters"`
	DurationSeconds    *int     `json:"duration_seconds"`
	SetType            *string  `json:"set_type"`
}

type Detail struct {
	Workout
	Sets []Set `json:"sets"`
}

type Type struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListParams bounds are From (inclusive) and Before (exclusive).
type ListParams struct {
	From           *time.Time
	Before         *time.Time
	TypeID         *int
	IncludeIgnored bool
	Limit          *int
}
