package employee

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return employee.MutationResponse{}, errs
	}

	emp, err := req.Normalize()
	if err != nil {
		return employee.MutationResponse{}, err
	}

	id, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.MutationResponse{}, err
	}

	return employee.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Employee %s added with ID %d", emp.FullName, id),
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return employee.MutationResponse{}, errs
	}

	emp, err := req.Normalize()
	if err != nil {
		return employee.MutationResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, id, emp); err != nil {
		return employee.MutationResponse{}, err
	}

	return employee.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Employee %d updated", id),
	}, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) (employee.MutationResponse, error) {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return employee.MutationResponse{}, err
	}
	return employee.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Employee %d deleted", id),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}
	return responses, nil
}
