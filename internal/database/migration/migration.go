package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"devcamper/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_pgcrypto",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	},
	{
		Name: "create_table_bootcamps",
		SQL: `CREATE TABLE IF NOT EXISTS bootcamps (
  id                UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  name              TEXT        NOT NULL UNIQUE CHECK (char_length(name) <= 50),
  slug              TEXT        NOT NULL,
  description       TEXT        NOT NULL CHECK (char_length(description) <= 500),
  website           TEXT,
  phone             TEXT,
  email             TEXT,
  lng               DOUBLE PRECISION,
  lat               DOUBLE PRECISION,
  formatted_address TEXT,
  street            TEXT,
  city              TEXT,
  state             TEXT,
  zipcode           TEXT,
  country           TEXT,
  careers           JSONB       NOT NULL DEFAULT '[]'::jsonb,
  average_rating    DOUBLE PRECISION CHECK (average_rating BETWEEN 1 AND 10),
  average_cost      DOUBLE PRECISION,
  photo             TEXT        NOT NULL DEFAULT 'no-photo.jpg',
  housing           BOOLEAN     NOT NULL DEFAULT false,
  job_assistance    BOOLEAN     NOT NULL DEFAULT false,
  job_guarantee     BOOLEAN     NOT NULL DEFAULT false,
  accept_gi         BOOLEAN     NOT NULL DEFAULT false,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK ((lat IS NULL) = (lng IS NULL))
);`,
	},
	{
		Name: "create_table_courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
  id                    UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  title                 TEXT        NOT NULL,
  description           TEXT        NOT NULL,
  weeks                 INTEGER     NOT NULL CHECK (weeks > 0),
  tuition               DOUBLE PRECISION NOT NULL CHECK (tuition >= 0),
  minimum_skill         TEXT        NOT NULL CHECK (minimum_skill IN ('beginner', 'intermediate', 'advanced')),
  scholarship_available BOOLEAN     NOT NULL DEFAULT false,
  bootcamp_id           UUID        NOT NULL REFERENCES bootcamps (id) ON DELETE CASCADE,
  created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_bootcamps_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bootcamps_created_at ON bootcamps (created_at);`,
	},
	{
		Name: "create_index_bootcamps_lat_lng",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bootcamps_lat_lng ON bootcamps (lat, lng);`,
	},
	{
		Name: "create_index_bootcamps_careers",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_bootcamps_careers ON bootcamps USING GIN (careers);`,
	},
	{
		Name: "create_index_courses_bootcamp_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_courses_bootcamp_id ON courses (bootcamp_id);`,
	},
}

// EnsureMigrated creates the schema when the courses table (created last of
// the tables) is missing. Every step is idempotent.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	log := logging.With("database")
	start := time.Now()

	log.Info().Str("event", "db_migration_check").Str("db_host", dbHost).Msg("checking schema")

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.courses') IS NOT NULL").Scan(&exists); err != nil {
		log.Error().Err(err).Str("event", "db_migration_failed").Str("db_host", dbHost).
			Int64("duration_ms", time.Since(start).Milliseconds()).Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().Str("event", "db_migration_skip").Str("db_host", dbHost).
			Int64("duration_ms", time.Since(start).Milliseconds()).Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).Str("event", "db_migration_failed").Str("migration_step", step.Name).
				Str("db_host", dbHost).Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info().Str("event", "db_migration_step").Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).Msg("migration step applied")
	}

	log.Info().Str("event", "db_migration_success").Str("db_host", dbHost).
		Int64("duration_ms", time.Since(start).Milliseconds()).Msg("schema migrated")
	return nil
}
