package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/161corp/hr-backend-go/internal/domain/report"
	"github.com/161corp/hr-backend-go/internal/pkg/export"
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/google/uuid"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	exportDir  string
}

func NewReportService(reportRepo report.ReportRepository, exportDir string) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo, exportDir: exportDir}
}

// RunReport implements report.ReportService.
func (s *ReportServiceImpl) RunReport(ctx context.Context, kind report.Kind) (report.ReportResponse, error) {
	table, err := s.buildTable(ctx, kind)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return report.ToReportResponse(kind, table), nil
}

// ExportReport implements report.ReportService. Filenames carry a random
// suffix so repeated exports never clobber each other.
func (s *ReportServiceImpl) ExportReport(ctx context.Context, kind report.Kind) (report.ExportResponse, error) {
	table, err := s.buildTable(ctx, kind)
	if err != nil {
		return report.ExportResponse{}, err
	}

	filename := fmt.Sprintf("%s-%s.csv", kind, uuid.NewString())
	result, err := export.WriteCSV(table, filepath.Join(s.exportDir, filename))
	if err != nil {
		return report.ExportResponse{}, err
	}
	return report.ToExportResponse(kind, result), nil
}

func (s *ReportServiceImpl) buildTable(ctx context.Context, kind report.Kind) (export.Table, error) {
	switch kind {
	case report.KindEmployeeProjectRoles:
		rows, err := s.reportRepo.EmployeeProjectRoles(ctx)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Columns: []string{
			"ID", "Employee", "Position", "Base Salary", "Project", "Role",
			"Hours Worked", "Department",
		}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{
				r.EmployeeID, r.EmployeeName, r.Position,
				normalize.ToDisplayMoney(&r.BaseSalary),
				r.ProjectName, r.Role, r.HoursWorked, r.DepartmentName,
			})
		}
		return t, nil

	case report.KindEmployeesWithRoles:
		rows, err := s.reportRepo.EmployeesWithRoles(ctx)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Columns: []string{
			"ID", "Employee", "Position", "Base Salary", "Department",
			"Project", "Role", "Hours Worked", "Status",
		}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{
				r.EmployeeID, r.EmployeeName, r.Position,
				normalize.ToDisplayMoney(&r.BaseSalary),
				r.DepartmentName, r.ProjectName, r.Role, r.HoursWorked,
				r.AssignmentStatus,
			})
		}
		return t, nil

	case report.KindProjectDetails:
		rows, err := s.reportRepo.ProjectDetails(ctx)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Columns: []string{
			"ID", "Employee", "Position", "Base Salary", "Project", "Role",
			"Hours Worked", "Department", "Manager", "Manager Email",
		}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{
				r.EmployeeID, r.EmployeeName, r.Position,
				normalize.ToDisplayMoney(&r.BaseSalary),
				r.ProjectName, r.Role, r.HoursWorked, r.DepartmentName,
				r.ManagerName, r.ManagerEmail,
			})
		}
		return t, nil

	case report.KindAboveAverageSalaries:
		rows, err := s.reportRepo.AboveAverageSalaries(ctx)
		if err != nil {
			return export.Table{}, err
		}
		t := export.Table{Columns: []string{
			"ID", "Employee", "Position", "Department", "Assignments",
			"Base Salary", "Average Salary", "Difference",
		}}
		for _, r := range rows {
			t.Rows = append(t.Rows, []any{
				r.EmployeeID, r.EmployeeName, r.Position, r.DepartmentName,
				r.AssignmentCount,
				normalize.ToDisplayMoney(&r.BaseSalary),
				normalize.ToDisplayMoney(&r.AverageSalary),
				normalize.ToDisplayMoney(&r.Difference),
			})
		}
		return t, nil

	default:
		return export.Table{}, report.ErrUnknownReport
	}
}
