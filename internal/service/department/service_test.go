package department

import (
	"context"
	"testing"

	"github.com/161corp/hr-backend-go/internal/domain/department"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	employeeCounts map[int64]int64
	departments    map[int64]department.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (int64, error) {
	return 5, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, id int64, dept department.Department) error {
	if _, ok := f.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if count := f.employeeCounts[id]; count > 0 {
		return apperr.DeleteConstraint(
			"cannot delete department: 3 employee(s) still belong to it")
	}
	if _, ok := f.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id int64) (department.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func TestCreateDepartment(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{})

	result, err := svc.CreateDepartment(context.Background(), department.CreateDepartmentRequest{
		Name: "Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	assert.Contains(t, result.Message, "Engineering")
}

func TestCreateDepartmentRequiresName(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{})

	_, err := svc.CreateDepartment(context.Background(), department.CreateDepartmentRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "name")
}

func TestDeleteDepartmentBlockedByEmployees(t *testing.T) {
	repo := &fakeDepartmentRepo{
		employeeCounts: map[int64]int64{1: 3},
		departments:    map[int64]department.Department{1: {ID: 1, Name: "Sales"}},
	}
	svc := NewDepartmentService(repo)

	_, err := svc.DeleteDepartment(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperr.IsDeleteConstraint(err))
	assert.Contains(t, err.Error(), "3 employee(s)")
}

func TestDeleteDepartmentNotFound(t *testing.T) {
	svc := NewDepartmentService(&fakeDepartmentRepo{})

	_, err := svc.DeleteDepartment(context.Background(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteEmptyDepartment(t *testing.T) {
	repo := &fakeDepartmentRepo{
		departments: map[int64]department.Department{2: {ID: 2, Name: "Archive"}},
	}
	svc := NewDepartmentService(repo)

	result, err := svc.DeleteDepartment(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ID)
}
