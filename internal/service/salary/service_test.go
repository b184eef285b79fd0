package salary

import (
	"context"
	"testing"

	"github.com/161corp/hr-backend-go/internal/domain/salary"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryRepo struct {
	base, bonus, deduction decimal.Decimal
	recorded               map[[2]int]bool
	history                []salary.Payment
}

func (f *fakeSalaryRepo) MonthlyFigures(ctx context.Context, employeeID int64, month, year int) (string, decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	if employeeID == 0 {
		return "", decimal.Zero, decimal.Zero, decimal.Zero, apperr.NotFound("Employee not found")
	}
	return "Le Van C", f.base, f.bonus, f.deduction, nil
}

func (f *fakeSalaryRepo) RecordPayment(ctx context.Context, employeeID int64, month, year int) (int64, error) {
	key := [2]int{month, year}
	if f.recorded[key] {
		return 0, apperr.Validation("Salary for this month already recorded")
	}
	if f.recorded == nil {
		f.recorded = make(map[[2]int]bool)
	}
	f.recorded[key] = true
	return 11, nil
}

func (f *fakeSalaryRepo) HistoryByEmployee(ctx context.Context, employeeID int64) ([]salary.Payment, error) {
	return f.history, nil
}

func (f *fakeSalaryRepo) ListByMonth(ctx context.Context, month, year int) ([]salary.Payment, error) {
	return f.history, nil
}

func TestCalculateSalary(t *testing.T) {
	repo := &fakeSalaryRepo{
		base:      decimal.NewFromInt(1000), // 10,000,000 VND
		bonus:     decimal.NewFromInt(200),  // 2,000,000 VND
		deduction: decimal.NewFromInt(50),   // 500,000 VND
	}
	svc := NewSalaryService(repo)

	preview, err := svc.CalculateSalary(context.Background(), 3, 6, 2024)
	require.NoError(t, err)

	assert.Equal(t, "Le Van C", preview.EmployeeName)
	assert.Equal(t, "June", preview.Month)
	assert.Equal(t, int64(10_000_000), preview.BaseSalary)
	assert.Equal(t, int64(2_000_000), preview.TotalBonus)
	assert.Equal(t, int64(500_000), preview.TotalDeduction)
	assert.Equal(t, int64(11_500_000), preview.NetSalary)
	assert.Equal(t, "11,500,000 VNĐ", preview.NetSalaryText)
}

func TestCalculateSalaryInvalidMonth(t *testing.T) {
	svc := NewSalaryService(&fakeSalaryRepo{})

	_, err := svc.CalculateSalary(context.Background(), 3, 13, 2024)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRecordPaymentTwice(t *testing.T) {
	repo := &fakeSalaryRepo{}
	svc := NewSalaryService(repo)

	req := salary.RecordPaymentRequest{EmployeeID: 3, Month: 6, Year: 2024}

	first, err := svc.RecordPayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(11), first.ID)
	assert.Contains(t, first.Message, "June 2024")

	_, err = svc.RecordPayment(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "already recorded")
}

func TestListByMonthMarksStatus(t *testing.T) {
	repo := &fakeSalaryRepo{
		history: []salary.Payment{
			{EmployeeID: 1, Month: 6, Year: 2024, Status: salary.StatusPaid},
			{EmployeeID: 2, Month: 6, Year: 2024, Status: salary.StatusEstimated},
		},
	}
	svc := NewSalaryService(repo)

	payments, err := svc.ListByMonth(context.Background(), 6, 2024)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "Paid", payments[0].Status)
	assert.Equal(t, "Estimated", payments[1].Status)
}
