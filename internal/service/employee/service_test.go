package employee

import (
	"context"
	"testing"
	"time"

	"github.com/161corp/hr-backend-go/internal/domain/employee"
	"github.com/161corp/hr-backend-go/internal/pkg/apperr"
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	created   *employee.Employee
	updated   *employee.Employee
	createErr error
	byID      map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = &emp
	return 42, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id int64, emp employee.Employee) error {
	f.updated = &emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.byID {
		out = append(out, emp)
	}
	return out, nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:   "Nguyen Van A",
		Gender:     "M",
		Phone:      "0912345678",
		Email:      "nguyenvana",
		Position:   "Developer",
		HireDate:   "15/03/2023",
		BaseSalary: "10tr",
	}
}

func TestCreateEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo)

	result, err := svc.CreateEmployee(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.ID)
	assert.Contains(t, result.Message, "Nguyen Van A")

	require.NotNil(t, repo.created)
	// 10tr means 10,000,000 VND, stored at 1/10,000 scale.
	assert.True(t, repo.created.BaseSalary.Equal(decimal.NewFromInt(1000)),
		"stored salary = %s", repo.created.BaseSalary)
	assert.Equal(t, "nguyenvana@161Corp.com", repo.created.Email)
}

func TestCreateEmployeeMissingFields(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "full_name")
	assert.Contains(t, errs.ToMap(), "hire_date")
}

func TestCreateEmployeeInvalidPhone(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	req := validCreateRequest()
	req.Phone = "12345"

	_, err := svc.CreateEmployee(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateEmployeeBelowMinimumSalary(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	req := validCreateRequest()
	req.BaseSalary = "4000000"

	_, err := svc.CreateEmployee(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestGetEmployeeFormatsDisplayFields(t *testing.T) {
	hireDate := mustDate(t, "01/02/2022")
	repo := &fakeEmployeeRepo{byID: map[int64]employee.Employee{
		7: {
			ID:         7,
			FullName:   "Tran Thi B",
			Gender:     employee.Female,
			Phone:      "0987654321",
			Email:      "tranthib@161Corp.com",
			Position:   "Accountant",
			HireDate:   hireDate,
			BaseSalary: decimal.NewFromInt(1500),
		},
	}}
	svc := NewEmployeeService(repo)

	resp, err := svc.GetEmployee(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "01/02/2022", resp.HireDate)
	assert.Equal(t, int64(15_000_000), resp.BaseSalary)
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.GetEmployee(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.True(t, apperr.IsNotFound(err))
}

func mustDate(t *testing.T, s string) (d time.Time) {
	t.Helper()
	d, err := normalize.ParseDisplayDate(s)
	require.NoError(t, err)
	return d
}
