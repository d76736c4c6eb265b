package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrTypeNotFound    = errors.New("workout type not found")
	ErrTypeExists      = errors.New("workout type already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("params.include_ignored", params.IncludeIgnored))
	if params.From != nil {
		span.SetAttributes(attribute.String("params.from", params.From.String()))
	}
	if params.Before != nil {
		span.SetAttributes(attribute.String("params.before", params.Before.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, title, date, duration_seconds, ignored, type_id
			FROM workout
			WHERE ($1::boolean OR ignored = FALSE)
			  AND ($2::timestamptz IS NULL OR date >= $2)
			  AND ($3::timestamptz IS NULL OR date < $3)
			  AND ($4::int IS NULL OR type_id = $4)
			ORDER BY date DESC NULLS LAST, id
			LIMIT $5
		`,
		params.IncludeIgnored,
		params.From,
		params.Before,
		params.TypeID,
		params.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Title, &w.Date, &w.DurationSeconds, &w.Ignored, &w.TypeID); err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}

	return workouts, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, title, date, duration_seconds, ignored, type_id
			FROM workout
			WHERE id = $1
		`,
		id,
	).Scan(&w.ID, &w.Title, &w.Date, &w.DurationSeconds, &w.Ignored, &w.TypeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("workout [query row]: %w", err)
	}
	return &w, nil
}

// ListSets returns the sets of a workout in the order they were logged.
func (r *Repo) ListSets(ctx context.Context, workoutID string) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    workout_id, exercise_title, exercise_template_id, set_index,
			    reps, weight_kg, distance_meters, duration_seconds, set_type
			FROM exercise_set
			WHERE workout_id = $1
			ORDER BY id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("sets [query]: %w", err)
	}
	defer rows.Close()

	sets := []Set{}
	for rows.Next() {
		var s Set
		err := rows.Scan(
			&s.WorkoutID, &s.ExerciseTitle, &s.ExerciseTemplateID, &s.SetIndex,
			&s.Reps, &s.WeightKg, &s.DistanceMeters, &s.DurationSeconds, &s.SetType,
		)
		if err != nil {
			return nil, fmt.Errorf("sets [rows scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sets [rows error]: %w", err)
	}

	return sets, nil
}

func (r *Repo) GetDetail(ctx context.Context, id string) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get_detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sets, err := r.ListSets(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Workout: *w, Sets: sets}, nil
}

func (r *Repo) ToggleIgnored(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.toggle_ignored")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var ignored bool
	err = r.db.QueryRow(
		ctx,
		`UPDATE workout SET ignored = NOT ignored WHERE id = $1 RETURNING ignored`,
		id,
	).Scan(&ignored)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrWorkoutNotFound
	}
	if err != nil {
		return false, fmt.Errorf("toggle ignored [query row]: %w", err)
	}
	return ignored, nil
}

func (r *Repo) ListTypes(ctx context.Context) (_ []Type, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_types")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM workout_type ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("workout types [query]: %w", err)
	}
	defer rows.Close()

	types := []Type{}
	for rows.Next() {
		var t Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("workout types [rows scan]: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout types [rows error]: %w", err)
	}
	return types, nil
}

func (r *Repo) CreateType(ctx context.Context, name string) (_ *Type, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create_type")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t := Type{Name: strings.TrimSpace(name)}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_type (name) VALUES ($1) RETURNING id`,
		t.Name,
	).Scan(&t.ID)
	if pkg.IsUniqueViolation(err) {
		return nil, ErrTypeExists
	}
	if err != nil {
		return nil, fmt.Errorf("create workout type [query row]: %w", err)
	}
	return &t, nil
}

// AssignType sets or clears (typeID nil) the type of a workout.
func (r *Repo) AssignType(ctx context.Context, workoutID string, typeID *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.assign_type")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET type_id = $2 WHERE id = $1`,
		workoutID, typeID,
	)
	if pkg.IsForeignKeyViolation(err) {
		return ErrTypeNotFound
	}
	if err != nil {
		return fmt.Errorf("assign workout type [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
