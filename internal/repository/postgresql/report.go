package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/report"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// EmployeeProjectRoles implements report.ReportRepository.
func (r *reportRepositoryImpl) EmployeeProjectRoles(ctx context.Context) ([]report.EmployeeProjectRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.position, e.base_salary,
			p.name, a.role, a.hours_worked, d.name
		FROM employees e
		JOIN assignments a ON a.employee_id = e.id
		JOIN projects p ON p.id = a.project_id
		JOIN departments d ON d.id = e.department_id
		ORDER BY e.full_name, p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var results []report.EmployeeProjectRole
	for rows.Next() {
		var row report.EmployeeProjectRole
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Position, &row.BaseSalary,
			&row.ProjectName, &row.Role, &row.HoursWorked, &row.DepartmentName,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}
	return results, nil
}

// EmployeesWithRoles implements report.ReportRepository. Employees without
// an assignment appear with null project fields and a telling status.
func (r *reportRepositoryImpl) EmployeesWithRoles(ctx context.Context) ([]report.EmployeeWithRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.position, e.base_salary, d.name,
			p.name, a.role, a.hours_worked,
			CASE WHEN a.id IS NULL THEN 'Not assigned' ELSE 'On a project' END
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN assignments a ON a.employee_id = e.id
		LEFT JOIN projects p ON p.id = a.project_id
		ORDER BY e.full_name, p.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var results []report.EmployeeWithRole
	for rows.Next() {
		var row report.EmployeeWithRole
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Position, &row.BaseSalary,
			&row.DepartmentName, &row.ProjectName, &row.Role, &row.HoursWorked,
			&row.AssignmentStatus,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}
	return results, nil
}

// ProjectDetails implements report.ReportRepository.
func (r *reportRepositoryImpl) ProjectDetails(ctx context.Context) ([]report.ProjectDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.position, e.base_salary,
			p.name, a.role, a.hours_worked, d.name, m.full_name, m.email
		FROM employees e
		JOIN assignments a ON a.employee_id = e.id
		JOIN projects p ON p.id = a.project_id
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN employees m ON m.id = d.manager_id
		ORDER BY d.name, p.name, e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var results []report.ProjectDetail
	for rows.Next() {
		var row report.ProjectDetail
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Position, &row.BaseSalary,
			&row.ProjectName, &row.Role, &row.HoursWorked, &row.DepartmentName,
			&row.ManagerName, &row.ManagerEmail,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}
	return results, nil
}

// AboveAverageSalaries implements report.ReportRepository.
func (r *reportRepositoryImpl) AboveAverageSalaries(ctx context.Context) ([]report.AboveAverageSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.position, d.name,
			COUNT(a.id), e.base_salary,
			(SELECT AVG(base_salary) FROM employees),
			e.base_salary - (SELECT AVG(base_salary) FROM employees)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		LEFT JOIN assignments a ON a.employee_id = e.id
		WHERE e.base_salary > (SELECT AVG(base_salary) FROM employees)
		GROUP BY e.id, e.full_name, e.position, d.name, e.base_salary
		ORDER BY e.base_salary DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var results []report.AboveAverageSalary
	for rows.Next() {
		var row report.AboveAverageSalary
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Position, &row.DepartmentName,
			&row.AssignmentCount, &row.BaseSalary, &row.AverageSalary, &row.Difference,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}
	return results, nil
}
