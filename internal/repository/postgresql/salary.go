package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/employee"
	"github.com/161corp/hr-backend-go/internal/domain/salary"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// MonthlyFigures implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) MonthlyFigures(ctx context.Context, employeeID int64, month, year int) (string, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT e.full_name, e.base_salary,
			COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Bonus'), 0),
			COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Deduction'), 0)
		FROM employees e
		LEFT JOIN bonus_deductions bd ON bd.employee_id = e.id
			AND EXTRACT(MONTH FROM bd.bd_date) = $2
			AND EXTRACT(YEAR FROM bd.bd_date) = $3
		WHERE e.id = $1
		GROUP BY e.id, e.full_name, e.base_salary
	`

	var (
		name                   string
		base, bonus, deduction decimal.Decimal
	)
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&name, &base, &bonus, &deduction)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", decimal.Zero, decimal.Zero, decimal.Zero, employee.ErrEmployeeNotFound
		}
		return "", decimal.Zero, decimal.Zero, decimal.Zero, apperr.Translate(err)
	}
	return name, base, bonus, deduction, nil
}

// RecordPayment implements salary.SalaryRepository. The procedure raises
// when the month is already recorded.
func (s *salaryRepositoryImpl) RecordPayment(ctx context.Context, employeeID int64, month, year int) (int64, error) {
	var id int64
	err := WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT sp_record_salary_payment($1, $2, $3)`,
			employeeID, month, year,
		).Scan(&id)
	})
	if err != nil {
		return 0, apperr.Translate(err)
	}
	return id, nil
}

// HistoryByEmployee implements salary.SalaryRepository. Rows come from the
// month-ordered salary summary view.
func (s *salaryRepositoryImpl) HistoryByEmployee(ctx context.Context, employeeID int64) ([]salary.Payment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, employee_name, month, year,
			base_salary, total_bonus, total_deduction, net_salary, payment_date
		FROM v_monthly_salary_summary
		WHERE employee_id = $1
		ORDER BY year, month
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// ListByMonth implements salary.SalaryRepository. Employees without a
// recorded payment appear with a zero id and no payment date; the service
// labels them Estimated.
func (s *salaryRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]salary.Payment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT COALESCE(sp.id, 0), e.id, e.full_name, $1::int, $2::int,
			e.base_salary,
			COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Bonus'), 0),
			COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Deduction'), 0),
			e.base_salary
				+ COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Bonus'), 0)
				- COALESCE(SUM(bd.amount) FILTER (WHERE bd.type = 'Deduction'), 0),
			sp.payment_date
		FROM employees e
		LEFT JOIN bonus_deductions bd ON bd.employee_id = e.id
			AND EXTRACT(MONTH FROM bd.bd_date) = $1
			AND EXTRACT(YEAR FROM bd.bd_date) = $2
		LEFT JOIN salary_payments sp ON sp.employee_id = e.id
			AND sp.month = $1 AND sp.year = $2
		GROUP BY sp.id, e.id, e.full_name, e.base_salary, sp.payment_date
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]salary.Payment, error) {
	var payments []salary.Payment
	for rows.Next() {
		var p salary.Payment
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Month, &p.Year,
			&p.BaseSalary, &p.TotalBonus, &p.TotalDeduction, &p.NetSalary,
			&p.PaymentDate,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		if p.PaymentDate != nil {
			p.Status = salary.StatusPaid
		} else {
			p.Status = salary.StatusEstimated
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}
	return payments, nil
}
