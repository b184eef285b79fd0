package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (int64, error)
	Update(ctx context.Context, id int64, p Project) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context, filter ListProjectFilter) ([]Project, error)
}
