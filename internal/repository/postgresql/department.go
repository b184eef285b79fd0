package postgresql

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/department"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (int64, error) {
	var id int64
	err := WithTransaction(ctx, d.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_add_department($1, $2, $3)`,
			dept.Name, dept.Location, dept.ManagerID,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// Update implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) Update(ctx context.Context, id int64, dept department.Department) error {
	err := WithTransaction(ctx, d.db, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx,
			`SELECT sp_update_department($1, $2, $3, $4)`,
			id, dept.Name, dept.Location, dept.ManagerID,
		)
		return execErr
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// Delete implements department.DepartmentRepository. The employee count is
// checked inside the same transaction so the delete and the check see the
// same snapshot.
func (d *departmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := WithTransaction(ctx, d.db, func(tx pgx.Tx) error {
		var count int64
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM employees WHERE department_id = $1`, id,
		).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return apperr.DeleteConstraint(fmt.Sprintf(
				"cannot delete department: %d employee(s) still belong to it", count))
		}

		tag, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return department.ErrDepartmentNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.location, d.manager_id, m.full_name,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id)
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Location, &dept.ManagerID,
		&dept.ManagerName, &dept.EmployeeCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, apperr.Translate(err)
	}
	return dept, nil
}

// List implements department.DepartmentRepository.
func (d *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT d.id, d.name, d.location, d.manager_id, m.full_name,
			(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id)
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		ORDER BY d.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Location, &dept.ManagerID,
			&dept.ManagerName, &dept.EmployeeCount,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		departments = append(departments, dept)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return departments, nil
}
