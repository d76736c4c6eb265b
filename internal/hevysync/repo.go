package hevysync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) LastSyncTS(ctx context.Context) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sync.last_sync_ts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var lastSync *time.Time
	err = r.db.QueryRow(ctx, `SELECT last_sync_ts FROM sync_state WHERE id = 1`).Scan(&lastSync)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sync state [query row]: %w", err)
	}
	return lastSync, nil
}

func (r *Repo) SetLastSyncTS(ctx context.Context, ts time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sync.set_last_sync_ts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO sync_state (id, last_sync_ts) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_sync_ts = EXCLUDED.last_sync_ts
	`, ts)
	if err != nil {
		return fmt.Errorf("sync state [exec]: %w", err)
	}
	return nil
}

// UpsertWorkout stores the workout, replaces its sets and registers every
// exercise template in the catalog. User owned columns (ignored, type_id) are
// left untouched. Returns the number of stored sets.
func (r *Repo) UpsertWorkout(ctx context.Context, w hevy.Workout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sync.upsert_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", w.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
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

	_, err = tx.Exec(ctx, `
		INSERT INTO workout (id, title, date, start_time, end_time, duration_seconds, raw_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			date = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			duration_seconds = EXCLUDED.duration_seconds,
			raw_json = EXCLUDED.raw_json
	`,
		w.ID, w.Title, w.Date, w.StartTime, w.EndTime, w.DurationSeconds, jsonOrNil(w.Raw),
	)
	if err != nil {
		return 0, fmt.Errorf("upsert workout [%s]: %w", w.ID, err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_set WHERE workout_id = $1`, w.ID); err != nil {
		return 0, fmt.Errorf("delete sets [%s]: %w", w.ID, err)
	}

	stored := 0
	for _, ex := range w.Exercises {
		if ex.TemplateID != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO exercise (exercise_template_id, exercise_title)
				VALUES ($1, $2)
				ON CONFLICT (exercise_template_id) DO NOTHING
			`, *ex.TemplateID, ex.Title)
			if err != nil {
				return 0, fmt.Errorf("register exercise [%s]: %w", *ex.TemplateID, err)
			}
		}

		for _, s := range ex.Sets {
			tag, err := tx.Exec(ctx, `
				INSERT INTO exercise_set (
					workout_id, exercise_title, exercise_template_id, set_index,
					reps, weight_kg, distance_meters, duration_seconds, set_type, raw_json
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT ON CONSTRAINT exercise_set_key DO NOTHING
			`,
				w.ID, ex.Title, ex.TemplateID, s.Index,
				s.Reps, s.WeightKg, s.DistanceMeters, s.DurationSeconds, s.SetType, jsonOrNil(s.Raw),
			)
			if err != nil {
				return 0, fmt.Errorf("insert set [%s/%d]: %w", w.ID, s.Index, err)
			}
			stored += int(tag.RowsAffected())
		}
	}

	return stored, nil
}

func jsonOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
