package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/employee"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (int64, error) {
	var id int64
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_add_employee($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			emp.FullName, string(emp.Gender), emp.DOB, emp.Phone, emp.Email,
			emp.Address, emp.Position, emp.HireDate, emp.BaseSalary, emp.DepartmentID,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// Update implements employee.EmployeeRepository. Only the mutable columns
// are passed; the procedure raises when the employee does not exist.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, emp employee.Employee) error {
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx,
			`SELECT sp_update_employee($1, $2, $3, $4, $5, $6, $7)`,
			id, emp.FullName, emp.Phone, emp.Email, emp.Address, emp.Position, emp.BaseSalary,
		)
		return execErr
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository. A foreign key violation
// from dependent assignments or attendance surfaces as a delete-constraint
// error after translation.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, `SELECT sp_delete_employee($1)`, id)
		return execErr
	})
	if err != nil {
		return apperr.Translate(err)
	}
	return nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.full_name, e.gender, e.dob, e.phone, e.email, e.address,
			e.position, e.hire_date, e.base_salary, e.department_id,
			d.name, d.location
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Gender, &emp.DOB, &emp.Phone, &emp.Email,
		&emp.Address, &emp.Position, &emp.HireDate, &emp.BaseSalary,
		&emp.DepartmentID, &emp.DepartmentName, &emp.DepartmentLocation,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, apperr.Translate(err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository. The search term matches
// name, email or phone case-insensitively.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT e.id, e.full_name, e.gender, e.dob, e.phone, e.email, e.address,
			e.position, e.hire_date, e.base_salary, e.department_id,
			d.name, d.location
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE ($1 = '' OR e.full_name ILIKE '%' || $1 || '%'
			OR e.email ILIKE '%' || $1 || '%'
			OR e.phone ILIKE '%' || $1 || '%')
		ORDER BY e.id
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.Search, limit, filter.Offset)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Gender, &emp.DOB, &emp.Phone, &emp.Email,
			&emp.Address, &emp.Position, &emp.HireDate, &emp.BaseSalary,
			&emp.DepartmentID, &emp.DepartmentName, &emp.DepartmentLocation,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return employees, nil
}
