package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS workout_type (
		id SERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS workout (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(255) NOT NULL DEFAULT '',
		date TIMESTAMPTZ NULL,
		start_time TIMESTAMPTZ NULL,
		end_time TIMESTAMPTZ NULL,
		duration_seconds INTEGER NULL,
		ignored BOOLEAN NOT NULL DEFAULT FALSE,
		raw_json JSONB NULL,
		type_id INTEGER NULL REFERENCES workout_type(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS workout_date_idx ON workout(date)`,
	`CREATE TABLE IF NOT EXISTS exercise_set (
		id SERIAL PRIMARY KEY,
		workout_id VARCHAR(64) NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
		exercise_title VARCHAR(255) NOT NULL DEFAULT '',
		exercise_template_id VARCHAR(64) NULL,
		set_index INTEGER NOT NULL,
		reps INTEGER NULL,
		weight_kg DOUBLE PRECISION NULL,
		distance_meters DOUBLE PRECISION NULL,
		duration_seconds INTEGER NULL,
		set_type VARCHAR(64) NULL,
		raw_json JSONB NULL,
		CONSTRAINT exercise_set_key UNIQUE (workout_id, exercise_template_id, set_index)
	)`,
	`CREATE INDEX IF NOT EXISTS exercise_set_workout_idx ON exercise_set(workout_id)`,
	`CREATE INDEX IF NOT EXISTS exercise_set_template_idx ON exercise_set(exercise_template_id)`,
	`CREATE TABLE IF NOT EXISTS exercise (
		id SERIAL PRIMARY KEY,
		exercise_template_id VARCHAR(64) NOT NULL UNIQUE,
		exercise_title VARCHAR(255) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS muscle (
		id SERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id SERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_muscle (
		exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
		muscle_id INTEGER NOT NULL REFERENCES muscle(id) ON DELETE CASCADE,
		PRIMARY KEY (exercise_id, muscle_id)
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_equipment (
		exercise_id INTEGER NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		PRIMARY KEY (exercise_id, equipment_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sync_state (
		id INTEGER PRIMARY KEY DEFAULT 1,
		last_sync_ts TIMESTAMPTZ NULL
	)`,
	`INSERT INTO sync_state (id, last_sync_ts) VALUES (1, NULL) ON CONFLICT (id) DO NOTHING`,
}

// Migrate creates the schema. Every statement is idempotent, so it runs on each start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i, err)
		}
	}
	log.Debugf("db schema ready (%d statements)", len(schema))
	return nil
}
