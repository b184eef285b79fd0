package bonusdeduction

import (
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

type CreateBonusDeductionRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
}

type UpdateBonusDeductionRequest struct {
	Amount      string  `json:"amount"`
	Description *string `json:"description,omitempty"`
}

type ListBonusDeductionFilter struct {
	EmployeeID int64 `json:"employee_id"`
	Month      int   `json:"month,omitempty"`
	Year       int   `json:"year,omitempty"`
}

type BonusDeductionResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	Amount       int64   `json:"amount"`
	Description  *string `json:"description,omitempty"`
	Date         string  `json:"date"`
}

type LogEntryResponse struct {
	ID               int64  `json:"id"`
	BonusDeductionID int64  `json:"bonus_deduction_id"`
	EmployeeID       int64  `json:"employee_id"`
	Action           string `json:"action"`
	Amount           int64  `json:"amount"`
	LoggedAt         string `json:"logged_at"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r CreateBonusDeductionRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeBonus), string(TypeDeduction)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be Bonus or Deduction"})
	}
	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	return errs
}

func (r CreateBonusDeductionRequest) Normalize() (BonusDeduction, error) {
	var bd BonusDeduction
	bd.EmployeeID = r.EmployeeID
	bd.Type = Type(r.Type)
	bd.Description = r.Description

	amount, err := normalize.ParseCurrencyInput(r.Amount)
	if err != nil {
		return BonusDeduction{}, err
	}
	if err := normalize.ValidateSalary(amount); err != nil {
		return BonusDeduction{}, err
	}
	bd.Amount = normalize.ToStorageMoney(amount)

	date, err := normalize.ParseDisplayDate(r.Date)
	if err != nil {
		return BonusDeduction{}, err
	}
	bd.Date = date

	return bd, nil
}

func (r UpdateBonusDeductionRequest) Normalize() (BonusDeduction, error) {
	var bd BonusDeduction
	bd.Description = r.Description

	amount, err := normalize.ParseCurrencyInput(r.Amount)
	if err != nil {
		return BonusDeduction{}, err
	}
	if err := normalize.ValidateSalary(amount); err != nil {
		return BonusDeduction{}, err
	}
	bd.Amount = normalize.ToStorageMoney(amount)

	return bd, nil
}

func ToBonusDeductionResponse(bd BonusDeduction) BonusDeductionResponse {
	amount := bd.Amount
	return BonusDeductionResponse{
		ID:           bd.ID,
		EmployeeID:   bd.EmployeeID,
		EmployeeName: bd.EmployeeName,
		Type:         string(bd.Type),
		Amount:       normalize.ToDisplayMoney(&amount),
		Description:  bd.Description,
		Date:         normalize.FormatDisplayDate(&bd.Date),
	}
}

func ToLogEntryResponse(e LogEntry) LogEntryResponse {
	amount := e.Amount
	loggedAt := e.LoggedAt
	return LogEntryResponse{
		ID:               e.ID,
		BonusDeductionID: e.BonusDeductionID,
		EmployeeID:       e.EmployeeID,
		Action:           e.Action,
		Amount:           normalize.ToDisplayMoney(&amount),
		LoggedAt:         normalize.FormatDisplayDate(&loggedAt) + " " + normalize.FormatDisplayTime(&loggedAt),
	}
}
