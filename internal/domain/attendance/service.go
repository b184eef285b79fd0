package attendance

import "context"

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MutationResponse, error)
	ListByEmployee(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, month, year int) ([]MonthlySummaryResponse, error)
}
