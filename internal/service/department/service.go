package department

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return department.MutationResponse{}, errs
	}

	id, err := s.departmentRepo.Create(ctx, department.Department{
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return department.MutationResponse{}, err
	}

	return department.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Department %s added with ID %d", req.Name, id),
	}, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, id int64, req department.UpdateDepartmentRequest) (department.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return department.MutationResponse{}, errs
	}

	err := s.departmentRepo.Update(ctx, id, department.Department{
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return department.MutationResponse{}, err
	}

	return department.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Department %d updated", id),
	}, nil
}

// DeleteDepartment implements department.DepartmentService. The repository
// refuses when employees still belong to the department.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) (department.MutationResponse, error) {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return department.MutationResponse{}, err
	}
	return department.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Department %d deleted", id),
	}, nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.ToDepartmentResponse(dept))
	}
	return responses, nil
}
