package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (int64, error)
	Update(ctx context.Context, id int64, dept Department) error
	// Delete fails with a delete-constraint error carrying the employee
	// count when employees still belong to the department.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
