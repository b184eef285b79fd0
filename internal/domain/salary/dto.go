package salary

import (
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

type RecordPaymentRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`
}

type PreviewResponse struct {
	EmployeeID     int64  `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	Month          string `json:"month"`
	Year           int    `json:"year"`
	BaseSalary     int64  `json:"base_salary"`
	TotalBonus     int64  `json:"total_bonus"`
	TotalDeduction int64  `json:"total_deduction"`
	NetSalary      int64  `json:"net_salary"`
	NetSalaryText  string `json:"net_salary_text"`
}

type PaymentResponse struct {
	ID             int64  `json:"id"`
	EmployeeID     int64  `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	Month          string `json:"month"`
	Year           int    `json:"year"`
	BaseSalary     int64  `json:"base_salary"`
	TotalBonus     int64  `json:"total_bonus"`
	TotalDeduction int64  `json:"total_deduction"`
	NetSalary      int64  `json:"net_salary"`
	PaymentDate    string `json:"payment_date,omitempty"`
	Status         string `json:"status"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r RecordPaymentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	return errs
}

func ToPreviewResponse(p Preview) PreviewResponse {
	base, bonus, deduction, net := p.BaseSalary, p.TotalBonus, p.TotalDeduction, p.NetSalary
	netVND := normalize.ToDisplayMoney(&net)
	return PreviewResponse{
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		Month:          normalize.MonthName(p.Month),
		Year:           p.Year,
		BaseSalary:     normalize.ToDisplayMoney(&base),
		TotalBonus:     normalize.ToDisplayMoney(&bonus),
		TotalDeduction: normalize.ToDisplayMoney(&deduction),
		NetSalary:      netVND,
		NetSalaryText:  normalize.FormatCurrencyVND(netVND),
	}
}

func ToPaymentResponse(p Payment) PaymentResponse {
	base, bonus, deduction, net := p.BaseSalary, p.TotalBonus, p.TotalDeduction, p.NetSalary
	return PaymentResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   p.EmployeeName,
		Month:          normalize.MonthName(p.Month),
		Year:           p.Year,
		BaseSalary:     normalize.ToDisplayMoney(&base),
		TotalBonus:     normalize.ToDisplayMoney(&bonus),
		TotalDeduction: normalize.ToDisplayMoney(&deduction),
		NetSalary:      normalize.ToDisplayMoney(&net),
		PaymentDate:    normalize.FormatDisplayDate(p.PaymentDate),
		Status:         string(p.Status),
	}
}
