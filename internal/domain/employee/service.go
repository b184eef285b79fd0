package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates and normalizes the request, then inserts
	// through the sp_add_employee procedure
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (MutationResponse, error)

	// UpdateEmployee rewrites the mutable fields of an existing employee
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (MutationResponse, error)

	// DeleteEmployee removes an employee; dependent records block the delete
	DeleteEmployee(ctx context.Context, id int64) (MutationResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// ListEmployees lists employees with department info, optional search
	// and paging
	ListEmployees(ctx context.Context, filter ListEmployeeFilter) ([]EmployeeResponse, error)
}
