package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/assignment"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Create implements assignment.AssignmentRepository. The procedure rejects
// a duplicate (employee, project) pair.
func (a *assignmentRepositoryImpl) Create(ctx context.Context, as assignment.Assignment) (int64, error) {
	var id int64
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_assign_project($1, $2, $3, $4)`,
			as.EmployeeID, as.ProjectID, as.Role, as.HoursWorked,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// Update implements assignment.AssignmentRepository.
func (a *assignmentRepositoryImpl) Update(ctx context.Context, id int64, as assignment.Assignment) error {
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx,
			`UPDATE assignments SET role = $1, hours_worked = $2 WHERE id = $3`,
			as.Role, as.HoursWorked, id,
		)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return assignment.ErrAssignmentNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// Delete implements assignment.AssignmentRepository.
func (a *assignmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return assignment.ErrAssignmentNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// GetByID implements assignment.AssignmentRepository.
func (a *assignmentRepositoryImpl) GetByID(ctx context.Context, id int64) (assignment.Assignment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.project_id, a.role, a.hours_worked,
			e.full_name, p.name
		FROM assignments a
		JOIN employees e ON e.id = a.employee_id
		JOIN projects p ON p.id = a.project_id
		WHERE a.id = $1
	`

	var as assignment.Assignment
	err := q.QueryRow(ctx, query, id).Scan(
		&as.ID, &as.EmployeeID, &as.ProjectID, &as.Role, &as.HoursWorked,
		&as.EmployeeName, &as.ProjectName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, apperr.Translate(err)
	}
	return as, nil
}

// ListByEmployee implements assignment.AssignmentRepository.
func (a *assignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]assignment.Assignment, error) {
	return a.list(ctx, `a.employee_id = $1`, employeeID)
}

// ListByProject implements assignment.AssignmentRepository.
func (a *assignmentRepositoryImpl) ListByProject(ctx context.Context, projectID int64) ([]assignment.Assignment, error) {
	return a.list(ctx, `a.project_id = $1`, projectID)
}

func (a *assignmentRepositoryImpl) list(ctx context.Context, where string, arg any) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.project_id, a.role, a.hours_worked,
			e.full_name, p.name
		FROM assignments a
		JOIN employees e ON e.id = a.employee_id
		JOIN projects p ON p.id = a.project_id
		WHERE ` + where + `
		ORDER BY a.id
	`

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var as assignment.Assignment
		err := rows.Scan(
			&as.ID, &as.EmployeeID, &as.ProjectID, &as.Role, &as.HoursWorked,
			&as.EmployeeName, &as.ProjectName,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		assignments = append(assignments, as)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return assignments, nil
}
