package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hevystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const selectExercisesQuery = `
	SELECT
	    e.id, e.exercise_title, e.exercise_template_id,
	    COALESCE((
	        SELECT array_agg(m.name ORDER BY m.name)
	        FROM exercise_muscle em
	        JOIN muscle m ON m.id = em.muscle_id
	        WHERE em.exercise_id = e.id
	    ), '{}') AS muscles,
	    COALESCE((
	        SELECT array_agg(q.name ORDER BY q.name)
	        FROM exercise_equipment ee
	        JOIN equipment q ON q.id = ee.equipment_id
	        WHERE ee.exercise_id = e.id
	    ), '{}') AS equipment
	FROM exercise e
	WHERE ($1::int IS NULL OR e.id = $1)
	ORDER BY e.exercise_title, e.id
`

// tag tables share the same shape: <tag>(id, name) linked by exercise_<tag>(exercise_id, <tag>_id)
var (
	muscleTags    = tagTables{tag: "muscle", link: "exercise_muscle", column: "muscle_id"}
	equipmentTags = tagTables{tag: "equipment", link: "exercise_equipment", column: "equipment_id"}
)

type tagTables struct {
	tag    string
	link   string
	column string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.query(ctx, nil)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	list, err := r.query(ctx, &id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrExerciseNotFound
	}
	return &list[0], nil
}

func (r *Repo) query(ctx context.Context, id *int) ([]Exercise, error) {
	rows, err := r.db.Query(ctx, selectExercisesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.ExerciseTitle, &e.ExerciseTemplateID, &e.Muscles, &e.Equipment); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

// UpdateTags replaces the muscles and equipment given in params, creating
// missing tags on the way, and returns the updated exercise.
func (r *Repo) UpdateTags(ctx context.Context, id int, params UpdateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update_tags")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	if err = r.replaceAllTags(ctx, id, params); err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

func (r *Repo) replaceAllTags(ctx context.Context, id int, params UpdateParams) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var found int
	err = tx.QueryRow(ctx, `SELECT id FROM exercise WHERE id = $1 FOR UPDATE`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrExerciseNotFound
	}
	if err != nil {
		return fmt.Errorf("exercise [lock row]: %w", err)
	}

	if params.Muscles != nil {
		if err = replaceTags(ctx, tx, id, muscleTags, NormalizeTags(*params.Muscles)); err != nil {
			return err
		}
	}
	if params.Equipment != nil {
		if err = replaceTags(ctx, tx, id, equipmentTags, NormalizeTags(*params.Equipment)); err != nil {
			return err
		}
	}

	return nil
}

func replaceTags(ctx context.Context, tx pgx.Tx, exerciseID int, tables tagTables, names []string) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE exercise_id = $1`, tables.link), exerciseID); err != nil {
		return fmt.Errorf("%s [delete links]: %w", tables.tag, err)
	}

	for _, name := range names {
		var tagID int
		err := tx.QueryRow(
			ctx,
			fmt.Sprintf(`
				INSERT INTO %s (name) VALUES ($1)
				ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				RETURNING id
			`, tables.tag),
			name,
		).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("%s [upsert %q]: %w", tables.tag, name, err)
		}

		if _, err := tx.Exec(
			ctx,
			fmt.Sprintf(`INSERT INTO %s (exercise_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, tables.link, tables.column),
			exerciseID, tagID,
		); err != nil {
			return fmt.Errorf("%s [link %q]: %w", tables.tag, name, err)
		}
	}

	return nil
}

// TitleByTemplate returns the catalog title of a template, "" when unknown.
func (r *Repo) TitleByTemplate(ctx context.Context, templateID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.title_by_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var title string
	err = r.db.QueryRow(
		ctx,
		`SELECT exercise_title FROM exercise WHERE exercise_template_id = $1`,
		templateID,
	).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("exercise title [query row]: %w", err)
	}
	return title, nil
}

// ListProgressSets returns the sets of a template in workouts dated in
// [from, before), ordered by workout date.
func (r *Repo) ListProgressSets(ctx context.Context, templateID string, from, before time.Time) (_ []ProgressSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_progress_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.template_id", templateID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT s.workout_id, w.date, s.exercise_title, s.set_index, s.weight_kg, s.reps
			FROM exercise_set s
			JOIN workout w ON w.id = s.workout_id
			WHERE s.exercise_template_id = $1
			  AND w.date IS NOT NULL
			  AND w.date >= $2
			  AND w.date < $3
			ORDER BY w.date, w.id, s.id
		`,
		templateID,
		from,
		before,
	)
	if err != nil {
		return nil, fmt.Errorf("progress sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []ProgressSet
	for rows.Next() {
		var s ProgressSet
		if err := rows.Scan(&s.WorkoutID, &s.WorkoutDate, &s.ExerciseTitle, &s.SetIndex, &s.WeightKg, &s.Reps); err != nil {
			return nil, fmt.Errorf("progress sets [rows scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress sets [rows error]: %w", err)
	}

	return sets, nil
}
