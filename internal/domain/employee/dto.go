package employee

import (
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name"`
	Gender       string  `json:"gender"`
	DOB          string  `json:"dob,omitempty"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      *string `json:"address,omitempty"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	BaseSalary   string  `json:"base_salary"`
	DepartmentID *int64  `json:"department_id,omitempty"`
}

// Gender, DOB, hire date and department are fixed at creation time and
// cannot be changed afterwards.
type UpdateEmployeeRequest struct {
	FullName   string  `json:"full_name"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	Address    *string `json:"address,omitempty"`
	Position   string  `json:"position"`
	BaseSalary string  `json:"base_salary"`
}

type ListEmployeeFilter struct {
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type EmployeeResponse struct {
	ID                 int64   `json:"id"`
	FullName           string  `json:"full_name"`
	Gender             string  `json:"gender"`
	DOB                string  `json:"dob,omitempty"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	Address            *string `json:"address,omitempty"`
	Position           string  `json:"position"`
	HireDate           string  `json:"hire_date"`
	BaseSalary         int64   `json:"base_salary"`
	DepartmentID       *int64  `json:"department_id,omitempty"`
	DepartmentName     *string `json:"department_name,omitempty"`
	DepartmentLocation *string `json:"department_location,omitempty"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r CreateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if !validator.IsInSlice(r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be M or F"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date is required"})
	}
	if validator.IsEmpty(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base salary is required"})
	}
	return errs
}

// Normalize converts the display-format request into a storable entity.
func (r CreateEmployeeRequest) Normalize() (Employee, error) {
	var emp Employee

	emp.FullName = r.FullName
	emp.Gender = Gender(r.Gender)
	emp.Position = r.Position
	emp.Address = r.Address
	emp.DepartmentID = r.DepartmentID

	email, err := normalize.EnsureEmailDomain(r.Email)
	if err != nil {
		return Employee{}, err
	}
	emp.Email = email

	if err := normalize.ValidatePhone(r.Phone); err != nil {
		return Employee{}, err
	}
	emp.Phone = r.Phone

	if r.DOB != "" {
		dob, err := normalize.ParseDisplayDate(r.DOB)
		if err != nil {
			return Employee{}, err
		}
		emp.DOB = &dob
	}

	hireDate, err := normalize.ParseDisplayDate(r.HireDate)
	if err != nil {
		return Employee{}, err
	}
	if err := normalize.ValidateHireDate(hireDate); err != nil {
		return Employee{}, err
	}
	emp.HireDate = hireDate

	salary, err := normalize.ParseCurrencyInput(r.BaseSalary)
	if err != nil {
		return Employee{}, err
	}
	if err := normalize.ValidateSalary(salary); err != nil {
		return Employee{}, err
	}
	if err := normalize.ValidateMinimumSalary(salary); err != nil {
		return Employee{}, err
	}
	emp.BaseSalary = normalize.ToStorageMoney(salary)

	return emp, nil
}

func (r UpdateEmployeeRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base salary is required"})
	}
	return errs
}

// Normalize applies the same conversions as the create path to the
// mutable fields.
func (r UpdateEmployeeRequest) Normalize() (Employee, error) {
	var emp Employee

	emp.FullName = r.FullName
	emp.Position = r.Position
	emp.Address = r.Address

	email, err := normalize.EnsureEmailDomain(r.Email)
	if err != nil {
		return Employee{}, err
	}
	emp.Email = email

	if err := normalize.ValidatePhone(r.Phone); err != nil {
		return Employee{}, err
	}
	emp.Phone = r.Phone

	salary, err := normalize.ParseCurrencyInput(r.BaseSalary)
	if err != nil {
		return Employee{}, err
	}
	if err := normalize.ValidateSalary(salary); err != nil {
		return Employee{}, err
	}
	if err := normalize.ValidateMinimumSalary(salary); err != nil {
		return Employee{}, err
	}
	emp.BaseSalary = normalize.ToStorageMoney(salary)

	return emp, nil
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	baseSalary := e.BaseSalary
	return EmployeeResponse{
		ID:                 e.ID,
		FullName:           e.FullName,
		Gender:             string(e.Gender),
		DOB:                normalize.FormatDisplayDate(e.DOB),
		Phone:              e.Phone,
		Email:              e.Email,
		Address:            e.Address,
		Position:           e.Position,
		HireDate:           normalize.FormatDisplayDate(&e.HireDate),
		BaseSalary:         normalize.ToDisplayMoney(&baseSalary),
		DepartmentID:       e.DepartmentID,
		DepartmentName:     e.DepartmentName,
		DepartmentLocation: e.DepartmentLocation,
	}
}
