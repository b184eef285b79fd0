package salary

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/salary"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
)

type SalaryServiceImpl struct {
	salaryRepo salary.SalaryRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository) salary.SalaryService {
	return &SalaryServiceImpl{salaryRepo: salaryRepo}
}

// CalculateSalary implements salary.SalaryService. Nothing is persisted.
func (s *SalaryServiceImpl) CalculateSalary(ctx context.Context, employeeID int64, month, year int) (salary.PreviewResponse, error) {
	if month < 1 || month > 12 {
		return salary.PreviewResponse{}, apperr.Validation("month must be between 1 and 12")
	}

	name, base, bonus, deduction, err := s.salaryRepo.MonthlyFigures(ctx, employeeID, month, year)
	if err != nil {
		return salary.PreviewResponse{}, err
	}

	return salary.ToPreviewResponse(salary.Preview{
		EmployeeID:     employeeID,
		EmployeeName:   name,
		Month:          month,
		Year:           year,
		BaseSalary:     base,
		TotalBonus:     bonus,
		TotalDeduction: deduction,
		NetSalary:      NetAmount(base, bonus, deduction),
	}), nil
}

// RecordPayment implements salary.SalaryService.
func (s *SalaryServiceImpl) RecordPayment(ctx context.Context, req salary.RecordPaymentRequest) (salary.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return salary.MutationResponse{}, errs
	}

	id, err := s.salaryRepo.RecordPayment(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return salary.MutationResponse{}, err
	}

	return salary.MutationResponse{
		ID: id,
		Message: fmt.Sprintf("Salary for %s %d recorded for employee %d",
			normalize.MonthName(req.Month), req.Year, req.EmployeeID),
	}, nil
}

// HistoryByEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) HistoryByEmployee(ctx context.Context, employeeID int64) ([]salary.PaymentResponse, error) {
	payments, err := s.salaryRepo.HistoryByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

// ListByMonth implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByMonth(ctx context.Context, month, year int) ([]salary.PaymentResponse, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}

	payments, err := s.salaryRepo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return toResponses(payments), nil
}

func toResponses(payments []salary.Payment) []salary.PaymentResponse {
	responses := make([]salary.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, salary.ToPaymentResponse(p))
	}
	return responses
}
