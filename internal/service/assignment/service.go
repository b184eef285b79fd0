package assignment

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/assignment"
)

type AssignmentServiceImpl struct {
	assignmentRepo assignment.AssignmentRepository
}

func NewAssignmentService(assignmentRepo assignment.AssignmentRepository) assignment.AssignmentService {
	return &AssignmentServiceImpl{assignmentRepo: assignmentRepo}
}

// AssignProject implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) AssignProject(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return assignment.MutationResponse{}, errs
	}

	id, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Role:        req.Role,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		return assignment.MutationResponse{}, err
	}

	return assignment.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Employee %d assigned to project %d as %s", req.EmployeeID, req.ProjectID, req.Role),
	}, nil
}

// UpdateAssignment implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) UpdateAssignment(ctx context.Context, id int64, req assignment.UpdateAssignmentRequest) (assignment.MutationResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.MutationResponse{}, err
	}

	err := s.assignmentRepo.Update(ctx, id, assignment.Assignment{
		Role:        req.Role,
		HoursWorked: req.HoursWorked,
	})
	if err != nil {
		return assignment.MutationResponse{}, err
	}

	return assignment.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Assignment %d updated", id),
	}, nil
}

// DeleteAssignment implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) DeleteAssignment(ctx context.Context, id int64) (assignment.MutationResponse, error) {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return assignment.MutationResponse{}, err
	}
	return assignment.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Assignment %d deleted", id),
	}, nil
}

// ListByEmployee implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(assignments), nil
}

// ListByProject implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) ListByProject(ctx context.Context, projectID int64) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toResponses(assignments), nil
}

func toResponses(assignments []assignment.Assignment) []assignment.AssignmentResponse {
	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, as := range assignments {
		responses = append(responses, assignment.ToAssignmentResponse(as))
	}
	return responses
}
