package assignment

import (
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAssignmentRequest struct {
	EmployeeID int64  `json:"employee_id"`
	ProjectID  int64  `json:"project_id"`
	Role       string `json:"role"`
	// Optional; defaults to zero hours when omitted.
	HoursWorked decimal.Decimal `json:"hours_worked"`
}

type UpdateAssignmentRequest struct {
	Role        string          `json:"role"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
}

type AssignmentResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ProjectID    int64  `json:"project_id"`
	ProjectName  string `json:"project_name,omitempty"`
	Role         string `json:"role"`
	HoursWorked  string `json:"hours_worked"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r CreateAssignmentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if r.ProjectID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project id is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "hours worked cannot be negative"})
	}
	return errs
}

func (r UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	if r.HoursWorked.IsNegative() {
		return apperr.Validation("hours worked cannot be negative")
	}
	return nil
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ProjectID:    a.ProjectID,
		ProjectName:  a.ProjectName,
		Role:         a.Role,
		HoursWorked:  a.HoursWorked.String(),
	}
}
