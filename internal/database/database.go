package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/storygen/backend/internal/config"
)

func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
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

// Migrate creates the schema. All four tables are append-only: rows are
// inserted with a preformatted created_at stamp and never updated or
// deleted by the service.
func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(255) NOT NULL,
		password      VARCHAR(255) NOT NULL,
		mobile        VARCHAR(50) NOT NULL,
		gmail         VARCHAR(255) NOT NULL,
		registered_at VARCHAR(19) NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);

	CREATE TABLE IF NOT EXISTS login_logs (
		id          BIGSERIAL PRIMARY KEY,
		login_id    VARCHAR(36) NOT NULL,
		created_at  VARCHAR(19) NOT NULL,
		user_id     BIGINT NOT NULL,
		username    VARCHAR(255) NOT NULL,
		password    VARCHAR(255) NOT NULL,
		device_type VARCHAR(50) NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_login_logs_user ON login_logs(user_id);

	CREATE TABLE IF NOT EXISTS feedback (
		id              BIGSERIAL PRIMARY KEY,
		created_at      VARCHAR(19) NOT NULL,
		age             VARCHAR(50),
		genre           VARCHAR(255),
		theme           VARCHAR(255),
		main_characters TEXT,
		language        VARCHAR(100),
		title           TEXT,
		story           TEXT,
		rating          INT,
		feedback        TEXT,
		latency         VARCHAR(50),
		flesch_score    DOUBLE PRECISION,
		story_length    INT,
		psi             DOUBLE PRECISION,
		warning         TEXT
	);

	CREATE TABLE IF NOT EXISTS drift_warnings (
		id              BIGSERIAL PRIMARY KEY,
		request_id      VARCHAR(36) NOT NULL,
		created_at      VARCHAR(19) NOT NULL,
		age             VARCHAR(50),
		genre           VARCHAR(255),
		theme           VARCHAR(255),
		main_characters TEXT,
		language        VARCHAR(100),
		title           TEXT,
		story           TEXT,
		speed           DOUBLE PRECISION,
		flesch_score    DOUBLE PRECISION,
		story_length    INT,
		psi             DOUBLE PRECISION,
		warning         TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_drift_warnings_request ON drift_warnings(request_id);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// NowStamp returns the current time in the fixed "YYYY-MM-DD HH:MM:SS"
// format every persisted record is stamped with.
func NowStamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
