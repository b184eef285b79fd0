package apperr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslatePassthrough(t *testing.T) {
	original := NotFound("employee not found")
	translated := Translate(original)
	assert.Same(t, original, translated)
}

func TestTranslateNoRows(t *testing.T) {
	err := Translate(pgx.ErrNoRows)
	assert.True(t, IsNotFound(err))
}

func TestTranslateForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Message: "update or delete on table \"employees\" violates foreign key constraint"}
	err := Translate(pgErr)
	assert.True(t, IsDeleteConstraint(err))
}

func TestTranslateUniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		wantMsg    string
	}{
		{"assignments_employee_id_project_id_key", "employee is already assigned to this project"},
		{"salary_payments_employee_month_year_key", "salary for this month is already recorded"},
		{"employees_email_key", "email already exists"},
		{"employees_phone_number_key", "phone number already exists"},
	}
	for _, c := range cases {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: c.constraint}
		err := Translate(pgErr)
		require.True(t, IsValidation(err), "constraint %s", c.constraint)
		assert.Equal(t, c.wantMsg, err.Error())
	}

	unknown := &pgconn.PgError{Code: "23505", ConstraintName: "other_key", Message: "duplicate key value"}
	err := Translate(unknown)
	assert.True(t, IsValidation(err))
}

func TestTranslateRaiseException(t *testing.T) {
	cases := []struct {
		raw  string
		want func(error) bool
	}{
		{"Email already exists", IsValidation},
		{"Phone number already exists", IsValidation},
		{"Department ID does not exist", IsValidation},
		{"Employee not found", IsNotFound},
		{"Department not found", IsNotFound},
		{"Project not found", IsNotFound},
		{"Hire date cannot be in the future", IsValidation},
		{"Base salary must be greater than 0", IsValidation},
		{"Employee is already assigned to this project", IsValidation},
		{"Salary for December 2024 already recorded", IsValidation},
	}
	for _, c := range cases {
		pgErr := &pgconn.PgError{Code: "P0001", Message: c.raw}
		err := Translate(pgErr)
		assert.True(t, c.want(err), "message %q translated to %v", c.raw, err)
	}
}

func TestTranslateUnmatchedWrapsOriginal(t *testing.T) {
	raw := errors.New("connection refused")
	err := Translate(raw)
	require.True(t, IsDatabase(err))
	// Original backend text is kept for diagnosis.
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, raw)
}

func TestTranslateSubstringFallback(t *testing.T) {
	// Non-pg errors still go through the substring table.
	err := Translate(errors.New("call failed: Employee not found"))
	assert.True(t, IsNotFound(err))
}
