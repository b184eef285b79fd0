package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/project"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create implements project.ProjectRepository.
func (p *projectRepositoryImpl) Create(ctx context.Context, proj project.Project) (int64, error) {
	var id int64
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_add_project($1, $2, $3, $4)`,
			proj.Name, proj.StartDate, proj.EndDate, proj.Budget,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// Update implements project.ProjectRepository.
func (p *projectRepositoryImpl) Update(ctx context.Context, id int64, proj project.Project) error {
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx,
			`SELECT sp_update_project($1, $2, $3)`,
			id, proj.Name, proj.EndDate,
		)
		return execErr
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// Delete implements project.ProjectRepository.
func (p *projectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return project.ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// GetByID implements project.ProjectRepository.
func (p *projectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.name, p.start_date, p.end_date, p.budget,
			COALESCE(v.employee_count, 0), COALESCE(v.total_hours, 0)
		FROM projects p
		LEFT JOIN v_project_participation v ON v.project_id = p.id
		WHERE p.id = $1
	`

	var proj project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&proj.ID, &proj.Name, &proj.StartDate, &proj.EndDate, &proj.Budget,
		&proj.EmployeeCount, &proj.TotalHours,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, apperr.Translate(err)
	}
	return proj, nil
}

// List implements project.ProjectRepository. Status filters on the end
// date: ongoing projects have none, completed ones do.
func (p *projectRepositoryImpl) List(ctx context.Context, filter project.ListProjectFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.name, p.start_date, p.end_date, p.budget,
			COALESCE(v.employee_count, 0), COALESCE(v.total_hours, 0)
		FROM projects p
		LEFT JOIN v_project_participation v ON v.project_id = p.id
		WHERE ($1 = ''
			OR ($1 = 'ongoing' AND p.end_date IS NULL)
			OR ($1 = 'completed' AND p.end_date IS NOT NULL))
		ORDER BY p.id
	`

	rows, err := q.Query(ctx, query, filter.Status)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		err := rows.Scan(
			&proj.ID, &proj.Name, &proj.StartDate, &proj.EndDate, &proj.Budget,
			&proj.EmployeeCount, &proj.TotalHours,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		projects = append(projects, proj)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return projects, nil
}
