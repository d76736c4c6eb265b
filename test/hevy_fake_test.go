package test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
)

type fakeSet struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
	Type     string  `json:"type"`
}

type fakeExercise struct {
	Title              string    `json:"title"`
	ExerciseTemplateID string    `json:"exercise_template_id"`
	Sets               []fakeSet `json:"sets"`
}

type fakeWorkout struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Exercises []fakeExercise `json:"exercises"`
}

// fakeHevy pages through a fixed list of workouts like the Hevy API does.
type fakeHevy struct {
	mu         sync.Mutex
	workouts   []fakeWorkout
	failStatus int
	requests   int
}

func newFakeHevy(workouts []fakeWorkout) *fakeHevy {
	return &fakeHevy{workouts: workouts}
}

func (f *fakeHevy) reset(workouts []fakeWorkout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workouts = workouts
	f.failStatus = 0
	f.requests = 0
}

func (f *fakeHevy) failWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failStatus = status
}

func (f *fakeHevy) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeHevy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	if r.URL.Path != "/v1/workouts" {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("api-key") != "test-api-key" {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
		return
	}
	if f.failStatus != 0 {
		http.Error(w, "upstream failure", f.failStatus)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	pageCount := (len(f.workouts) + pageSize - 1) / pageSize
	start := min((page-1)*pageSize, len(f.workouts))
	end := min(start+pageSize, len(f.workouts))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"page":       page,
		"page_count": pageCount,
		"workouts":   f.workouts[start:end],
	})
}

// testWorkouts are returned newest first.
func testWorkouts() []fakeWorkout {
	return []fakeWorkout{
		{
			ID: "w3", Title: "Push Day",
			StartTime: "2024-03-10T10:00:00Z", EndTime: "2024-03-10T11:05:00Z",
			Exercises: []fakeExercise{
				{Title: "Bench Press", ExerciseTemplateID: "T-bench", Sets: []fakeSet{
					{WeightKg: 100, Reps: 5, Type: "normal"},
					{WeightKg: 105, Reps: 3, Type: "normal"},
				}},
				{Title: "Triceps Pushdown", ExerciseTemplateID: "T-tri", Sets: []fakeSet{
					{WeightKg: 30, Reps: 12, Type: "normal"},
				}},
			},
		},
		{
			ID: "w2", Title: "Pull Day",
			StartTime: "2024-03-05T18:00:00Z", EndTime: "2024-03-05T19:00:00Z",
			Exercises: []fakeExercise{
				{Title: "Bent Over Row", ExerciseTemplateID: "T-row", Sets: []fakeSet{
					{WeightKg: 80, Reps: 8, Type: "normal"},
					{WeightKg: 80, Reps: 10, Type: "normal"},
				}},
			},
		},
		{
			ID: "w1", Title: "Push Day",
			StartTime: "2024-02-28T10:00:00Z", EndTime: "2024-02-28T11:00:00Z",
			Exercises: []fakeExercise{
				{Title: "Bench Press", ExerciseTemplateID: "T-bench", Sets: []fakeSet{
					{WeightKg: 100, Reps: 5, Type: "normal"},
					{WeightKg: 100, Reps: 5, Type: "normal"},
				}},
			},
		},
		{
			ID: "w0", Title: "Leg Day",
			StartTime: "2023-12-20T09:00:00Z", EndTime: "2023-12-20T10:00:00Z",
			Exercises: []fakeExercise{
				{Title: "Squat", ExerciseTemplateID: "T-squat", Sets: []fakeSet{
					{WeightKg: 140, Reps: 3, Type: "normal"},
				}},
			},
		},
	}
}
