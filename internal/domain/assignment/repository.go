package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (int64, error)
	Update(ctx context.Context, id int64, a Assignment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Assignment, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Assignment, error)
	ListByProject(ctx context.Context, projectID int64) ([]Assignment, error)
}
