package postgresql

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/attendance"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Mark implements attendance.AttendanceRepository. The procedure upserts
// on (employee, date) and reports whether it inserted or updated.
func (a *attendanceRepositoryImpl) Mark(ctx context.Context, att attendance.Attendance) (int64, string, error) {
	var (
		id      int64
		message string
	)
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`SELECT * FROM sp_mark_attendance($1, $2, $3, $4, $5)`,
			att.EmployeeID, att.Date, string(att.Status), att.CheckIn, att.CheckOut,
		).Scan(&id, &message)
	})
	if err != nil {
		return 0, "", apperr.Translate(err)
	}
	return id, message, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, employee_name, att_date, status, check_in, check_out
		FROM v_employee_attendance
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM att_date) = $2
			AND EXTRACT(YEAR FROM att_date) = $3
		ORDER BY att_date
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.EmployeeName, &att.Date, &att.Status,
			&att.CheckIn, &att.CheckOut,
		)
		if err != nil {
			return nil, apperr.Translate(err)
		}
		records = append(records, att)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return records, nil
}

// MonthlySummary implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) MonthlySummary(ctx context.Context, month, year int) ([]attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COALESCE(d.name, 'Unassigned'),
			COUNT(*) FILTER (WHERE a.status = 'Present'),
			COUNT(*) FILTER (WHERE a.status = 'Absent'),
			COUNT(*) FILTER (WHERE a.status = 'On Leave')
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE EXTRACT(MONTH FROM a.att_date) = $1
			AND EXTRACT(YEAR FROM a.att_date) = $2
		GROUP BY d.name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, apperr.Translate(err)
	}
	defer rows.Close()

	var summaries []attendance.MonthlySummary
	for rows.Next() {
		var s attendance.MonthlySummary
		if err := rows.Scan(&s.DepartmentName, &s.Present, &s.Absent, &s.OnLeave); err != nil {
			return nil, apperr.Translate(err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, apperr.Translate(err)
	}

	return summaries, nil
}
