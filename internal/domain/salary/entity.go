package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors a row of salary_payments, joined with the employee name.
type Payment struct {
	ID             int64
	EmployeeID     int64
	EmployeeName   string
	Month          int
	Year           int
	BaseSalary     decimal.Decimal
	TotalBonus     decimal.Decimal
	TotalDeduction decimal.Decimal
	NetSalary      decimal.Decimal
	PaymentDate    *time.Time
	Status         Status
}

type Status string

const (
	// StatusPaid marks a month with a recorded payment, StatusEstimated a
	// month computed from current figures only.
	StatusPaid      Status = "Paid"
	StatusEstimated Status = "Estimated"
)

// Preview is a salary calculation that persists nothing.
type Preview struct {
	EmployeeID     int64
	EmployeeName   string
	Month          int
	Year           int
	BaseSalary     decimal.Decimal
	TotalBonus     decimal.Decimal
	TotalDeduction decimal.Decimal
	NetSalary      decimal.Decimal
}
