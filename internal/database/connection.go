package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. dbType selects the
// driver ("sqlite" or "postgres"); dsn is the sqlite file path or the
// postgres connection string.
func Connect(dbType, dsn string) error {
	switch dbType {
	case "postgres":
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
		DB = db
	default:
		// Create data directory if it doesn't exist
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %v", err)
			}
		}

		db, err := sqlx.Connect("sqlite3", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to sqlite: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		DB = db
	}

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	// One flat row per user; list-valued fields are stored as JSON so the
	// record round-trips as a whole, the way the progress store contract
	// expects.
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS user_progress (
			user_id TEXT PRIMARY KEY,
			sessions_completed INTEGER DEFAULT 0,
			physical_sessions INTEGER DEFAULT 0,
			speech_sessions INTEGER DEFAULT 0,
			cognitive_sessions INTEGER DEFAULT 0,
			completion_dates TEXT DEFAULT '[]',
			current_streak INTEGER DEFAULT 0,
			max_streak INTEGER DEFAULT 0,
			difficulty_level TEXT DEFAULT 'beginner',
			difficulty_changes TEXT DEFAULT '[]',
			exercise_feedback TEXT DEFAULT '[]',
			partial_sessions TEXT DEFAULT '[]',
			pending_congratulation BOOLEAN DEFAULT false,
			session_snapshot TEXT,
			reminder_hour INTEGER DEFAULT 9,
			reminder_set BOOLEAN DEFAULT false,
			last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_progress table: %v", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS exercises (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			instructions TEXT NOT NULL,
			repetitions INTEGER DEFAULT 0,
			duration INTEGER DEFAULT 0,
			rest INTEGER DEFAULT 0,
			precautions TEXT DEFAULT '',
			position INTEGER DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create exercises table: %v", err)
	}

	return nil
}
