package misc

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/hevystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Smoke struct {
	WorkoutsCount   int        `json:"workouts_count"`
	SetsCount       int        `json:"sets_count"`
	LastWorkoutDate *time.Time `json:"last_workout_date"`
	LastSyncTS      *time.Time `json:"last_sync_ts"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Ping(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.misc.ping")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var one int
	if err := r.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("select 1: %w", err)
	}
	return nil
}

func (r *Repo) Smoke(ctx context.Context) (_ *Smoke, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.misc.smoke")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Smoke
	if err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM workout),
			(SELECT COUNT(*) FROM exercise_set),
			(SELECT MAX(date) FROM workout),
			(SELECT last_sync_ts FROM sync_state WHERE id = 1)
	`).Scan(&s.WorkoutsCount, &s.SetsCount, &s.LastWorkoutDate, &s.LastSyncTS); err != nil {
		return nil, fmt.Errorf("smoke: %w", err)
	}
	return &s, nil
}
