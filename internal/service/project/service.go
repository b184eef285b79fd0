package project

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// CreateProject implements project.ProjectService.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return project.MutationResponse{}, errs
	}

	proj, err := req.Normalize()
	if err != nil {
		return project.MutationResponse{}, err
	}

	id, err := s.projectRepo.Create(ctx, proj)
	if err != nil {
		return project.MutationResponse{}, err
	}

	return project.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Project %s added with ID %d", proj.Name, id),
	}, nil
}

// UpdateProject implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, id int64, req project.UpdateProjectRequest) (project.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return project.MutationResponse{}, errs
	}

	proj, err := req.Normalize()
	if err != nil {
		return project.MutationResponse{}, err
	}

	if err := s.projectRepo.Update(ctx, id, proj); err != nil {
		return project.MutationResponse{}, err
	}

	return project.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Project %d updated", id),
	}, nil
}

// DeleteProject implements project.ProjectService.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id int64) (project.MutationResponse, error) {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return project.MutationResponse{}, err
	}
	return project.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Project %d deleted", id),
	}, nil
}

// GetProject implements project.ProjectService.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, id int64) (project.ProjectResponse, error) {
	proj, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToProjectResponse(proj), nil
}

// ListProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filter project.ListProjectFilter) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, proj := range projects {
		responses = append(responses, project.ToProjectResponse(proj))
	}
	return responses, nil
}
