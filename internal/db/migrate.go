package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		model_name TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stage_fields (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		stage      TEXT NOT NULL
		           CHECK(stage IN ('stage1','stage2','stage3')),
		field      TEXT NOT NULL,
		value      TEXT NOT NULL DEFAULT '',
		executed   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, stage, field)
	)`,
	`CREATE TABLE IF NOT EXISTS stage_notes (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		stage      TEXT NOT NULL
		           CHECK(stage IN ('stage1','stage2','stage3')),
		notes      TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (project_id, stage)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stage_fields_project ON stage_fields(project_id)`,
}
