package department

import "context"

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (MutationResponse, error)
	UpdateDepartment(ctx context.Context, id int64, req UpdateDepartmentRequest) (MutationResponse, error)
	DeleteDepartment(ctx context.Context, id int64) (MutationResponse, error)
	GetDepartment(ctx context.Context, id int64) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
}
