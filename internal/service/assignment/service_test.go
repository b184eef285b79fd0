package assignment

import (
	"context"
	"testing"

	"github.com/161corp/hr-backend-go/internal/domain/assignment"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ employeeID, projectID int64 }

type fakeAssignmentRepo struct {
	existing map[pair]bool
	created  *assignment.Assignment
	updated  *assignment.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) (int64, error) {
	key := pair{a.EmployeeID, a.ProjectID}
	if f.existing[key] {
		return 0, apperr.Validation("Employee is already assigned to this project")
	}
	if f.existing == nil {
		f.existing = make(map[pair]bool)
	}
	f.existing[key] = true
	f.created = &a
	return 21, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, id int64, a assignment.Assignment) error {
	f.updated = &a
	return nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id int64) (assignment.Assignment, error) {
	return assignment.Assignment{}, assignment.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]assignment.Assignment, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) ListByProject(ctx context.Context, projectID int64) ([]assignment.Assignment, error) {
	return nil, nil
}

func TestAssignProject(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	svc := NewAssignmentService(repo)

	result, err := svc.AssignProject(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: 1, ProjectID: 2, Role: "Developer",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), result.ID)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.HoursWorked.IsZero(), "hours default to zero when omitted")
}

func TestAssignProjectWithHours(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	svc := NewAssignmentService(repo)

	_, err := svc.AssignProject(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: 1, ProjectID: 2, Role: "Developer",
		HoursWorked: decimal.NewFromFloat(12.5),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.HoursWorked.Equal(decimal.NewFromFloat(12.5)))
}

func TestAssignProjectNegativeHours(t *testing.T) {
	svc := NewAssignmentService(&fakeAssignmentRepo{})

	_, err := svc.AssignProject(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: 1, ProjectID: 2, Role: "Developer",
		HoursWorked: decimal.NewFromInt(-1),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "hours_worked")
}

func TestAssignProjectTwice(t *testing.T) {
	svc := NewAssignmentService(&fakeAssignmentRepo{})
	req := assignment.CreateAssignmentRequest{EmployeeID: 1, ProjectID: 2, Role: "Developer"}

	_, err := svc.AssignProject(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.AssignProject(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "already assigned")
}

func TestAssignProjectMissingRole(t *testing.T) {
	svc := NewAssignmentService(&fakeAssignmentRepo{})

	_, err := svc.AssignProject(context.Background(), assignment.CreateAssignmentRequest{
		EmployeeID: 1, ProjectID: 2,
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "role")
}

func TestUpdateAssignmentNegativeHours(t *testing.T) {
	svc := NewAssignmentService(&fakeAssignmentRepo{})

	_, err := svc.UpdateAssignment(context.Background(), 1, assignment.UpdateAssignmentRequest{
		Role:        "Tester",
		HoursWorked: decimal.NewFromInt(-5),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdateAssignment(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	svc := NewAssignmentService(repo)

	_, err := svc.UpdateAssignment(context.Background(), 1, assignment.UpdateAssignmentRequest{
		Role:        "Tester",
		HoursWorked: decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Tester", repo.updated.Role)
}
