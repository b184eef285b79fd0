package report

import (
	"context"
	"os"
	"testing"

	"github.com/161corp/hr-backend-go/internal/domain/report"
	"github.com/161corp/hr-backend-go/internal/pkg/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	roles []report.EmployeeProjectRole
}

func (f *fakeReportRepo) EmployeeProjectRoles(ctx context.Context) ([]report.EmployeeProjectRole, error) {
	return f.roles, nil
}

func (f *fakeReportRepo) EmployeesWithRoles(ctx context.Context) ([]report.EmployeeWithRole, error) {
	return nil, nil
}

func (f *fakeReportRepo) ProjectDetails(ctx context.Context) ([]report.ProjectDetail, error) {
	return nil, nil
}

func (f *fakeReportRepo) AboveAverageSalaries(ctx context.Context) ([]report.AboveAverageSalary, error) {
	return []report.AboveAverageSalary{
		{
			EmployeeID:      4,
			EmployeeName:    "Pham Thi D",
			Position:        "Team Lead",
			DepartmentName:  "Engineering",
			AssignmentCount: 2,
			BaseSalary:      decimal.NewFromInt(2000),
			AverageSalary:   decimal.NewFromInt(1500),
			Difference:      decimal.NewFromInt(500),
		},
	}, nil
}

func TestRunReport(t *testing.T) {
	repo := &fakeReportRepo{roles: []report.EmployeeProjectRole{
		{
			EmployeeID:     1,
			EmployeeName:   "Nguyen Van A",
			Position:       "Developer",
			BaseSalary:     decimal.NewFromInt(1500),
			ProjectName:    "CRM",
			Role:           "Developer",
			HoursWorked:    decimal.NewFromFloat(12.5),
			DepartmentName: "Engineering",
		},
	}}
	svc := NewReportService(repo, t.TempDir())

	result, err := svc.RunReport(context.Background(), report.KindEmployeeProjectRoles)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ID", "Employee", "Position", "Base Salary", "Project", "Role",
		"Hours Worked", "Department",
	}, result.Columns)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Nguyen Van A", result.Rows[0][1])
	// Stored amounts are scaled back to whole VND for display.
	assert.Equal(t, int64(15_000_000), result.Rows[0][3])
	assert.Equal(t, "Engineering", result.Rows[0][7])
}

func TestRunAboveAverageSalariesReport(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, t.TempDir())

	result, err := svc.RunReport(context.Background(), report.KindAboveAverageSalaries)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ID", "Employee", "Position", "Department", "Assignments",
		"Base Salary", "Average Salary", "Difference",
	}, result.Columns)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(20_000_000), result.Rows[0][5])
	assert.Equal(t, int64(15_000_000), result.Rows[0][6])
	assert.Equal(t, int64(5_000_000), result.Rows[0][7])
}

func TestRunReportUnknownKind(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, t.TempDir())

	_, err := svc.RunReport(context.Background(), report.Kind("bogus"))
	assert.ErrorIs(t, err, report.ErrUnknownReport)
}

func TestExportReport(t *testing.T) {
	repo := &fakeReportRepo{roles: []report.EmployeeProjectRole{
		{EmployeeName: "Nguyen Van A", ProjectName: "CRM", Role: "Developer"},
	}}
	dir := t.TempDir()
	svc := NewReportService(repo, dir)

	result, err := svc.ExportReport(context.Background(), report.KindEmployeeProjectRoles)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nguyen Van A")
}

func TestExportReportEmpty(t *testing.T) {
	dir := t.TempDir()
	svc := NewReportService(&fakeReportRepo{}, dir)

	_, err := svc.ExportReport(context.Background(), report.KindEmployeeProjectRoles)
	assert.ErrorIs(t, err, export.ErrNoRows)

	// No file should be left behind on a failed export.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
