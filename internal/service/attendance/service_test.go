package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/161corp/hr-backend-go/internal/domain/attendance"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	marked *attendance.Attendance
}

func (f *fakeAttendanceRepo) Mark(ctx context.Context, att attendance.Attendance) (int64, string, error) {
	f.marked = &att
	return 7, "Attendance marked", nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) MonthlySummary(ctx context.Context, month, year int) ([]attendance.MonthlySummary, error) {
	return nil, nil
}

func TestMarkAttendance(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo)

	result, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "01/02/2022",
		Status:     "Present",
		CheckIn:    "08:30",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, "Attendance marked", result.Message)
	require.NotNil(t, repo.marked)
	assert.Equal(t, attendance.StatusPresent, repo.marked.Status)
}

func TestMarkAttendanceFutureDate(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(repo)

	nextWeek := normalize.FormatDisplayDate(ptrTime(time.Now().AddDate(0, 0, 7)))
	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       nextWeek,
		Status:     "Present",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Nil(t, repo.marked, "future dates must be rejected before reaching the repository")
}

func TestMarkAttendanceBadStatus(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "01/02/2022",
		Status:     "Sick",
	})
	require.Error(t, err)
}

func ptrTime(t time.Time) *time.Time { return &t }
