package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (int64, error)
	Update(ctx context.Context, id int64, emp Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context, filter ListEmployeeFilter) ([]Employee, error)
}
