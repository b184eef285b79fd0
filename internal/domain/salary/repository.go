package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

type SalaryRepository interface {
	// MonthlyFigures returns the employee name, base salary and the bonus
	// and deduction totals for the given month.
	MonthlyFigures(ctx context.Context, employeeID int64, month, year int) (name string, base, bonus, deduction decimal.Decimal, err error)
	RecordPayment(ctx context.Context, employeeID int64, month, year int) (int64, error)
	HistoryByEmployee(ctx context.Context, employeeID int64) ([]Payment, error)
	ListByMonth(ctx context.Context, month, year int) ([]Payment, error)
}
