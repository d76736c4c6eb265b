package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/hevystats/internal/analysis"
	"github.com/2beens/hevystats/internal/compare"
	"github.com/2beens/hevystats/internal/dashboard"
	"github.com/2beens/hevystats/internal/exercises"
	"github.com/2beens/hevystats/internal/hevysync"
	"github.com/2beens/hevystats/internal/records"
	"github.com/2beens/hevystats/internal/workouts"
)

const dateLayout = "2006-01-02"

type HealthStatus struct {
	OK bool `json:"ok"`
}

type ToggleIgnoredResult struct {
	OK        bool   `json:"ok"`
	WorkoutID string `json:"workout_id"`
	Ignored   bool   `json:"ignored"`
}

type SyncResult struct {
	OK bool `json:"ok"`
	hevysync.Result
}

type WorkoutsQuery struct {
	Year           int
	From           time.Time
	To             time.Time
	TypeID         *int
	IncludeIgnored bool
}

func (q WorkoutsQuery) values() url.Values {
	v := url.Values{}
	if q.Year > 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	if !q.From.IsZero() {
		v.Set("from", q.From.Format(dateLayout))
	}
	if !q.To.IsZero() {
		v.Set("to", q.To.Format(dateLayout))
	}
	if q.TypeID != nil {
		v.Set("typeId", strconv.Itoa(*q.TypeID))
	}
	if q.IncludeIgnored {
		v.Set("includeIgnored", "true")
	}
	return v
}

// CompareQuery selects two workouts by id, or the latest two when both are empty.
type CompareQuery struct {
	Last   string
	Prev   string
	TypeID *int
}

type RecordsQuery struct {
	Metric records.Metric
	Reps   int
	Year   int
}

// Health does not use the cache.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	respBytes, err := c.do(ctx, http.MethodGet, c.url("/health", nil), nil)
	if err != nil {
		return nil, err
	}
	status, err := decode[HealthStatus](respBytes)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) DashboardSummary(ctx context.Context, year int) (*dashboard.Summary, error) {
	query := url.Values{"year": {strconv.Itoa(year)}}
	summary, err := getJSON[dashboard.Summary](ctx, c, "/api/dashboard/summary", query, defaultStaleTime)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ListWorkouts(ctx context.Context, q WorkoutsQuery) ([]workouts.Workout, error) {
	return getJSON[[]workouts.Workout](ctx, c, "/api/workouts", q.values(), workoutsStaleTime)
}

func (c *Client) GetWorkout(ctx context.Context, id string) (*workouts.Detail, error) {
	detail, err := getJSON[workouts.Detail](ctx, c, "/api/workouts/"+url.PathEscape(id), nil, workoutsStaleTime)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CompareWorkouts(ctx context.Context, q CompareQuery) (*compare.Comparison, error) {
	query := url.Values{}
	if q.Last != "" {
		query.Set("last", q.Last)
	}
	if q.Prev != "" {
		query.Set("prev", q.Prev)
	}
	if q.TypeID != nil {
		query.Set("typeId", strconv.Itoa(*q.TypeID))
	}
	comparison, err := getJSON[compare.Comparison](ctx, c, "/api/workouts/compare", query, workoutsStaleTime)
	if err != nil {
		return nil, err
	}
	return &comparison, nil
}

// RecentComparison compares a workout with the latest other workout of the same title.
func (c *Client) RecentComparison(ctx context.Context, id string) (*compare.Comparison, error) {
	path := "/api/workouts/" + url.PathEscape(id) + "/recent-comparison"
	comparison, err := getJSON[compare.Comparison](ctx, c, path, nil, workoutsStaleTime)
	if err != nil {
		return nil, err
	}
	return &comparison, nil
}

func (c *Client) ToggleIgnored(ctx context.Context, id string) (*ToggleIgnoredResult, error) {
	res, err := postJSON[ToggleIgnoredResult](ctx, c, "/api/ignored/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) WorkoutTypes(ctx context.Context) ([]workouts.Type, error) {
	return getJSON[[]workouts.Type](ctx, c, "/api/workout-types", nil, typesStaleTime)
}

func (c *Client) CreateWorkoutType(ctx context.Context, name string) (*workouts.Type, error) {
	body := map[string]string{"name": name}
	created, err := postJSON[workouts.Type](ctx, c, "/api/workout-types", nil, body)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AssignWorkoutType sets the type of a workout, a nil typeID clears it.
func (c *Client) AssignWorkoutType(ctx context.Context, workoutID string, typeID *int) error {
	body := struct {
		WorkoutID string `json:"workout_id"`
		TypeID    *int   `json:"type_id"`
	}{
		WorkoutID: workoutID,
		TypeID:    typeID,
	}
	_, err := postJSON[HealthStatus](ctx, c, "/api/workout-types/assign", nil, body)
	return err
}

func (c *Client) Exercises(ctx context.Context) ([]exercises.Exercise, error) {
	return getJSON[[]exercises.Exercise](ctx, c, "/api/exercises", nil, defaultStaleTime)
}

func (c *Client) UpdateExercise(ctx context.Context, id int, params exercises.UpdateParams) (*exercises.Exercise, error) {
	updated, err := patchJSON[exercises.Exercise](ctx, c, "/api/exercises/"+strconv.Itoa(id), params)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ExerciseProgress returns the best set per workout in [from, to], both days inclusive.
func (c *Client) ExerciseProgress(ctx context.Context, templateID string, from, to time.Time) (*exercises.Progress, error) {
	query := url.Values{
		"from": {from.Format(dateLayout)},
		"to":   {to.Format(dateLayout)},
	}
	path := "/api/exercises/" + url.PathEscape(templateID) + "/progress"
	progress, err := getJSON[exercises.Progress](ctx, c, path, query, defaultStaleTime)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *Client) AnalysisSummary(ctx context.Context, from, to time.Time) (*analysis.Summary, error) {
	query := url.Values{
		"from": {from.Format(dateLayout)},
		"to":   {to.Format(dateLayout)},
	}
	summary, err := getJSON[analysis.Summary](ctx, c, "/api/analysis/summary", query, defaultStaleTime)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Records(ctx context.Context, q RecordsQuery) ([]records.Record, error) {
	query := url.Values{}
	if q.Metric != "" {
		query.Set("metric", string(q.Metric))
	}
	if q.Reps > 0 {
		query.Set("reps", strconv.Itoa(q.Reps))
	}
	if q.Year > 0 {
		query.Set("year", strconv.Itoa(q.Year))
	}
	return getJSON[[]records.Record](ctx, c, "/api/records", query, defaultStaleTime)
}

// Sync triggers an upstream sync. force skips the cooldown.
func (c *Client) Sync(ctx context.Context, force bool) (*SyncResult, error) {
	var query url.Values
	if force {
		query = url.Values{"force": {"true"}}
	}
	res, err := postJSON[SyncResult](ctx, c, "/api/sync", query, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
