package report

import "context"

type ReportRepository interface {
	EmployeeProjectRoles(ctx context.Context) ([]EmployeeProjectRole, error)
	EmployeesWithRoles(ctx context.Context) ([]EmployeeWithRole, error)
	ProjectDetails(ctx context.Context) ([]ProjectDetail, error)
	AboveAverageSalaries(ctx context.Context) ([]AboveAverageSalary, error)
}
