package assignment

import "github.com/shopspring/decimal"

type Assignment struct {
	ID          int64
	EmployeeID  int64
	ProjectID   int64
	Role        string
	HoursWorked decimal.Decimal

	// Populated by list queries.
	EmployeeName string
	ProjectName  string
}
