package attendance

import "context"

type AttendanceRepository interface {
	// Mark inserts or updates the record for (employee, date). The backend
	// decides which and reports it in the returned message.
	Mark(ctx context.Context, att Attendance) (int64, string, error)
	ListByEmployee(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, error)
	MonthlySummary(ctx context.Context, month, year int) ([]MonthlySummary, error)
}
