package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/otaku-quiz/backend/internal/config"
)

// Connect opens the content database selected by the configuration.
// Postgres is the production backend; SQLite serves local and embedded
// deployments.
func Connect(cfg *config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return connectPostgres(cfg)
	case "sqlite":
		return connectSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}
}

func connectPostgres(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func connectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite serializes writers; keep a single connection to avoid
	// SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates the question pool schema. Idempotent, and portable
// across both supported drivers.
func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS questions (
		id             TEXT PRIMARY KEY,
		series         TEXT NOT NULL,
		difficulty     INTEGER NOT NULL CHECK (difficulty >= 1 AND difficulty <= 4),
		text           TEXT NOT NULL,
		choice1        TEXT NOT NULL,
		choice2        TEXT NOT NULL,
		choice3        TEXT NOT NULL,
		choice4        TEXT NOT NULL,
		correct_answer INTEGER NOT NULL CHECK (correct_answer >= 1 AND correct_answer <= 4),
		explanation    TEXT NOT NULL DEFAULT '',
		time_limit     INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_questions_series ON questions(series);
	CREATE INDEX IF NOT EXISTS idx_questions_series_difficulty ON questions(series, difficulty);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
