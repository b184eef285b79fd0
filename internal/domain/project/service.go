package project

import "context"

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (MutationResponse, error)
	UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (MutationResponse, error)
	DeleteProject(ctx context.Context, id int64) (MutationResponse, error)
	GetProject(ctx context.Context, id int64) (ProjectResponse, error)
	ListProjects(ctx context.Context, filter ListProjectFilter) ([]ProjectResponse, error)
}
