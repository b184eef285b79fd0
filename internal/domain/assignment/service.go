package assignment

import "context"

type AssignmentService interface {
	// AssignProject links an employee to a project via sp_assign_project.
	// Assigning the same pair twice is a validation error.
	AssignProject(ctx context.Context, req CreateAssignmentRequest) (MutationResponse, error)
	UpdateAssignment(ctx context.Context, id int64, req UpdateAssignmentRequest) (MutationResponse, error)
	DeleteAssignment(ctx context.Context, id int64) (MutationResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]AssignmentResponse, error)
	ListByProject(ctx context.Context, projectID int64) ([]AssignmentResponse, error)
}
