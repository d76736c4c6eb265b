package analysis

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

// ListWorkoutMuscles resolves the sets of non-ignored workouts dated in
// [from, before) to the muscles tagged on their catalog exercise.
func (r *Repo) ListWorkoutMuscles(ctx context.Context, from, before time.Time) (_ []WorkoutMuscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analysis.list_workout_muscles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT w.id, m.name
			FROM workout w
			JOIN exercise_set s ON s.workout_id = w.id
			JOIN exercise e ON e.exercise_template_id = s.exercise_template_id
			JOIN exercise_muscle em ON em.exercise_id = e.id
			JOIN muscle m ON m.id = em.muscle_id
			WHERE w.ignored = FALSE
			  AND w.date IS NOT NULL
			  AND w.date >= $1
			  AND w.date < $2
		`,
		from,
		before,
	)
	if err != nil {
		return nil, fmt.Errorf("workout muscles [query]: %w", err)
	}
	defer rows.Close()

	var list []WorkoutMuscle
	for rows.Next() {
		var wm WorkoutMuscle
		if err := rows.Scan(&wm.WorkoutID, &wm.Muscle); err != nil {
			return nil, fmt.Errorf("workout muscles [rows scan]: %w", err)
		}
		list = append(list, wm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout muscles [rows error]: %w", err)
	}

	return list, nil
}
