package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minsukang/stagegate/internal/db"
	"github.com/minsukang/stagegate/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over SQLite. It accepts a DBTX
// so the same implementation serves both direct and transactional use.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, model_name, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.ModelName,
		boolToInt(p.Completed),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	for _, stage := range domain.AllStages {
		if err := r.writeStage(ctx, p.ID, stage, p.Stage(stage)); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, model_name, completed, created_at, updated_at
		FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProject(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadStages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Project, error) {
	query := `SELECT id, name, model_name, completed, created_at, updated_at
		FROM projects ORDER BY created_at`
	if !includeCompleted {
		query = `SELECT id, name, model_name, completed, created_at, updated_at
			FROM projects WHERE completed = 0 ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadStages(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, model_name = ?, completed = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.ModelName,
		boolToInt(p.Completed),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	query := `UPDATE projects SET completed = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, boolToInt(completed), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting completed flag: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) SetField(ctx context.Context, projectID string, stage domain.StageName, field, value string) error {
	query := `INSERT INTO stage_fields (project_id, stage, field, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, stage, field) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, projectID, string(stage), field, value); err != nil {
		return fmt.Errorf("upserting field %s/%s: %w", stage, field, err)
	}
	return r.touch(ctx, projectID)
}

func (r *SQLiteProjectRepo) SetExecuted(ctx context.Context, projectID string, stage domain.StageName, field string, executed bool) error {
	query := `INSERT INTO stage_fields (project_id, stage, field, executed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, stage, field) DO UPDATE SET executed = excluded.executed`
	if _, err := r.db.ExecContext(ctx, query, projectID, string(stage), field, boolToInt(executed)); err != nil {
		return fmt.Errorf("upserting executed flag %s/%s: %w", stage, field, err)
	}
	return r.touch(ctx, projectID)
}

func (r *SQLiteProjectRepo) SetNotes(ctx context.Context, projectID string, stage domain.StageName, notes string) error {
	query := `INSERT INTO stage_notes (project_id, stage, notes)
		VALUES (?, ?, ?)
		ON CONFLICT(project_id, stage) DO UPDATE SET notes = excluded.notes`
	if _, err := r.db.ExecContext(ctx, query, projectID, string(stage), notes); err != nil {
		return fmt.Errorf("upserting notes for %s: %w", stage, err)
	}
	return r.touch(ctx, projectID)
}

func (r *SQLiteProjectRepo) touch(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE projects SET updated_at = ? WHERE id = ?`, nowUTC(), projectID); err != nil {
		return fmt.Errorf("touching project: %w", err)
	}
	return nil
}

// writeStage persists every stored field and the notes of one stage.
func (r *SQLiteProjectRepo) writeStage(ctx context.Context, projectID string, stage domain.StageName, s domain.Stage) error {
	for field, value := range s.Values {
		query := `INSERT INTO stage_fields (project_id, stage, field, value, executed)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(project_id, stage, field) DO UPDATE SET value = excluded.value, executed = excluded.executed`
		if _, err := r.db.ExecContext(ctx, query,
			projectID, string(stage), field, value, boolToInt(s.Executed[field])); err != nil {
			return fmt.Errorf("inserting field %s/%s: %w", stage, field, err)
		}
	}
	for field, executed := range s.Executed {
		if _, ok := s.Values[field]; ok {
			continue
		}
		query := `INSERT INTO stage_fields (project_id, stage, field, executed)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(project_id, stage, field) DO UPDATE SET executed = excluded.executed`
		if _, err := r.db.ExecContext(ctx, query,
			projectID, string(stage), field, boolToInt(executed)); err != nil {
			return fmt.Errorf("inserting executed flag %s/%s: %w", stage, field, err)
		}
	}
	if s.Notes != "" {
		if err := r.SetNotes(ctx, projectID, stage, s.Notes); err != nil {
			return err
		}
	}
	return nil
}

// loadStages fills the project's three stage records from stage_fields and
// stage_notes.
func (r *SQLiteProjectRepo) loadStages(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT stage, field, value, executed FROM stage_fields WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("loading stage fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stageStr, field, value string
		var executed int
		if err := rows.Scan(&stageStr, &field, &value, &executed); err != nil {
			return fmt.Errorf("scanning stage field: %w", err)
		}
		stage := domain.StageName(stageStr)
		s := p.Stage(stage)
		s.Set(field, value)
		if intToBool(executed) {
			s.SetExecuted(field, true)
		}
		p.SetStage(stage, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating stage fields: %w", err)
	}

	noteRows, err := r.db.QueryContext(ctx,
		`SELECT stage, notes FROM stage_notes WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("loading stage notes: %w", err)
	}
	defer noteRows.Close()

	for noteRows.Next() {
		var stageStr, notes string
		if err := noteRows.Scan(&stageStr, &notes); err != nil {
			return fmt.Errorf("scanning stage notes: %w", err)
		}
		stage := domain.StageName(stageStr)
		s := p.Stage(stage)
		s.Notes = notes
		p.SetStage(stage, s)
	}
	if err := noteRows.Err(); err != nil {
		return fmt.Errorf("iterating stage notes: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var completed int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.ModelName, &completed, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Completed = intToBool(completed)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
