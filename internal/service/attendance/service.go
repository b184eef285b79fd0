package attendance

import (
	"context"

	"github.com/161corp/hr-backend-go/internal/domain/attendance"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// MarkAttendance implements attendance.AttendanceService. The message in
// the response comes from the backend and says whether the record was
// inserted or an existing one updated.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return attendance.MutationResponse{}, errs
	}

	att, err := req.Normalize()
	if err != nil {
		return attendance.MutationResponse{}, err
	}

	id, message, err := s.attendanceRepo.Mark(ctx, att)
	if err != nil {
		return attendance.MutationResponse{}, err
	}

	return attendance.MutationResponse{ID: id, Message: message}, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if filter.Month < 1 || filter.Month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToAttendanceResponse(att))
	}
	return responses, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, month, year int) ([]attendance.MonthlySummaryResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}

	summaries, err := s.attendanceRepo.MonthlySummary(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.MonthlySummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, attendance.MonthlySummaryResponse{
			DepartmentName: sum.DepartmentName,
			Present:        sum.Present,
			Absent:         sum.Absent,
			OnLeave:        sum.OnLeave,
		})
	}
	return responses, nil
}
