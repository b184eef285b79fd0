package report

import "github.com/shopspring/decimal"

// Kind names one of the canned reports.
type Kind string

const (
	KindEmployeeProjectRoles Kind = "employee-project-roles"
	KindEmployeesWithRoles   Kind = "employees-with-roles"
	KindProjectDetails       Kind = "project-details"
	KindAboveAverageSalaries Kind = "above-average-salaries"
)

// EmployeeProjectRole is one row of the inner-join roles report. Only
// employees with at least one assignment and a department appear.
type EmployeeProjectRole struct {
	EmployeeID     int64
	EmployeeName   string
	Position       string
	BaseSalary     decimal.Decimal
	ProjectName    string
	Role           string
	HoursWorked    decimal.Decimal
	DepartmentName string
}

// EmployeeWithRole is one row of the left-join report. Unassigned
// employees appear with nil project fields and a telling status.
type EmployeeWithRole struct {
	EmployeeID       int64
	EmployeeName     string
	Position         string
	BaseSalary       decimal.Decimal
	DepartmentName   *string
	ProjectName      *string
	Role             *string
	HoursWorked      *decimal.Decimal
	AssignmentStatus string
}

// ProjectDetail is one row of the multi-join report across employees,
// projects, departments and their managers.
type ProjectDetail struct {
	EmployeeID     int64
	EmployeeName   string
	Position       string
	BaseSalary     decimal.Decimal
	ProjectName    string
	Role           string
	HoursWorked    decimal.Decimal
	DepartmentName string
	ManagerName    *string
	ManagerEmail   *string
}

// AboveAverageSalary is one row of the above-average salary report. The
// company-wide average and the distance from it are computed per row.
type AboveAverageSalary struct {
	EmployeeID      int64
	EmployeeName    string
	Position        string
	DepartmentName  string
	AssignmentCount int64
	BaseSalary      decimal.Decimal
	AverageSalary   decimal.Decimal
	Difference      decimal.Decimal
}
