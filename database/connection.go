package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Println("Successfully connected to database")
	return db, nil
}

// activeSessionIndex is the partial unique index that keeps one active
// session per user. Inserts that violate it are reported as
// models.ErrAlreadyClockedIn.
const activeSessionIndex = "idx_service_sessions_one_active"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(255) PRIMARY KEY,
		email VARCHAR(255) UNIQUE,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		profile_image_url TEXT,
		role VARCHAR(50) NOT NULL DEFAULT 'server',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS service_sessions (
		id INTEGER PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		user_id VARCHAR(255) NOT NULL REFERENCES users(id),
		clock_in_time TIMESTAMPTZ NOT NULL,
		clock_out_time TIMESTAMPTZ,
		service_type VARCHAR(255) DEFAULT 'General Service',
		duration_minutes INTEGER,
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	// Columns the first deployment wrote without declaring.
	`ALTER TABLE service_sessions ADD COLUMN IF NOT EXISTS clock_in_latitude DOUBLE PRECISION`,
	`ALTER TABLE service_sessions ADD COLUMN IF NOT EXISTS clock_in_longitude DOUBLE PRECISION`,
	`ALTER TABLE service_sessions ADD COLUMN IF NOT EXISTS clock_in_location_verified BOOLEAN`,
	`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_service_sessions_user ON service_sessions(user_id, clock_in_time DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_service_sessions_clock_in ON service_sessions(clock_in_time)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + activeSessionIndex + ` ON service_sessions(user_id) WHERE is_active`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	log.Printf("Applied %d schema statements", len(migrations))
	return nil
}
