package salary

import "context"

type SalaryService interface {
	// CalculateSalary previews net pay for a month without persisting
	// anything.
	CalculateSalary(ctx context.Context, employeeID int64, month, year int) (PreviewResponse, error)

	// RecordPayment records the month's salary via sp_record_salary_payment.
	// Recording the same month twice is a validation error.
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (MutationResponse, error)

	HistoryByEmployee(ctx context.Context, employeeID int64) ([]PaymentResponse, error)
	ListByMonth(ctx context.Context, month, year int) ([]PaymentResponse, error)
}
