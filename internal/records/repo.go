package records

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/hevystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListWeightedSets returns sets with weight > 0 of non-ignored workouts whose
// date is in [from, before). Nil bounds are open.
func (r *Repo) ListWeightedSets(ctx context.Context, from, before *time.Time) (_ []SetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list_weighted_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    s.exercise_title, s.exercise_template_id, s.weight_kg, s.reps,
			    w.id, w.title, w.date
			FROM exercise_set s
			JOIN workout w ON w.id = s.workout_id
			WHERE w.ignored = FALSE
			  AND s.weight_kg IS NOT NULL
			  AND s.weight_kg > 0
			  AND ($1::timestamptz IS NULL OR w.date >= $1)
			  AND ($2::timestamptz IS NULL OR w.date < $2)
			ORDER BY w.date NULLS LAST, s.id
		`,
		from,
		before,
	)
	if err != nil {
		return nil, fmt.Errorf("weighted sets [query]: %w", err)
	}
	defer rows.Close()

	var setRows []SetRow
	for rows.Next() {
		var row SetRow
		if err := rows.Scan(
			&row.ExerciseTitle, &row.ExerciseTemplateID, &row.WeightKg, &row.Reps,
			&row.WorkoutID, &row.WorkoutTitle, &row.WorkoutDate,
		); err != nil {
			return nil, fmt.Errorf("weighted sets [rows scan]: %w", err)
		}
		setRows = append(setRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weighted sets [rows error]: %w", err)
	}

	return setRows, nil
}
