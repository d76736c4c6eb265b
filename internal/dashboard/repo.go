package dashboard

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

// ListSets returns every set of the non-ignored workouts dated in [from, before).
func (r *Repo) ListSets(ctx context.Context, from, before time.Time) (_ []SetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.list_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT s.exercise_title, s.weight_kg, s.reps, w.date
			FROM exercise_set s
			JOIN workout w ON w.id = s.workout_id
			WHERE w.ignored = FALSE
			  AND w.date >= $1
			  AND w.date < $2
		`,
		from,
		before,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard sets [query]: %w", err)
	}
	defer rows.Close()

	var sets []SetRow
	for rows.Next() {
		var s SetRow
		if err := rows.Scan(&s.ExerciseTitle, &s.WeightKg, &s.Reps, &s.WorkoutDate); err != nil {
			return nil, fmt.Errorf("dashboard sets [rows scan]: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard sets [rows error]: %w", err)
	}

	return sets, nil
}
