package department

import "github.com/161corp/hr-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name      string  `json:"name"`
	Location  *string `json:"location,omitempty"`
	ManagerID *int64  `json:"manager_id,omitempty"`
}

type UpdateDepartmentRequest struct {
	Name      string  `json:"name"`
	Location  *string `json:"location,omitempty"`
	ManagerID *int64  `json:"manager_id,omitempty"`
}

type DepartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      *string `json:"location,omitempty"`
	ManagerID     *int64  `json:"manager_id,omitempty"`
	ManagerName   *string `json:"manager_name,omitempty"`
	EmployeeCount int64   `json:"employee_count"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r CreateDepartmentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "department name is required"})
	}
	return errs
}

func (r UpdateDepartmentRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "department name is required"})
	}
	return errs
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Location:      d.Location,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		EmployeeCount: d.EmployeeCount,
	}
}
