package repository

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS safety_scores (
			id TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			overall INTEGER NOT NULL,
			confidence REAL NOT NULL,
			lighting REAL NOT NULL,
			footfall REAL NOT NULL,
			hazards REAL NOT NULL,
			proximity_to_help REAL NOT NULL,
			time_of_day TEXT NOT NULL,
			traveler_type TEXT NOT NULL,
			computed_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			category TEXT NOT NULL,
			description TEXT,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_scores_position ON safety_scores(latitude, longitude);
		CREATE INDEX IF NOT EXISTS idx_scores_computed_at ON safety_scores(computed_at);
		CREATE INDEX IF NOT EXISTS idx_reports_position ON reports(latitude, longitude);
		CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
