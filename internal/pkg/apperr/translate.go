package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised by the backend. The stored procedures validate their
// inputs and raise_exception (P0001) with a known message before touching any
// table, so a raw foreign key violation only surfaces on DELETE statements.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeRaiseException      = "P0001"
)

// messageRule maps a known backend message substring to a typed error.
type messageRule struct {
	substring string
	build     func(msg string) *Error
}

// Known stored-procedure messages. Matching on message text is a
// compatibility shim with the backend contract: if the backend wording
// changes these silently stop matching and fall through to KindDatabase.
var messageRules = []messageRule{
	{"Email already exists", func(string) *Error { return Validation("email already exists") }},
	{"Phone number already exists", func(string) *Error { return Validation("phone number already exists") }},
	{"Department ID does not exist", func(string) *Error { return Validation("department does not exist") }},
	{"Employee not found", func(string) *Error { return NotFound("employee not found") }},
	{"Department not found", func(string) *Error { return NotFound("department not found") }},
	{"Project not found", func(string) *Error { return NotFound("project not found") }},
	{"Hire date cannot be in the future", func(string) *Error { return Validation("hire date cannot be in the future") }},
	{"Base salary must be greater than 0", func(string) *Error { return Validation("base salary must be greater than 0") }},
	{"already assigned to this project", func(string) *Error { return Validation("employee is already assigned to this project") }},
	{"already recorded", func(string) *Error { return Validation("salary for this month is already recorded") }},
}

// uniqueRules classify unique violations by constraint or detail text.
var uniqueRules = []messageRule{
	{"assignments", func(string) *Error { return Validation("employee is already assigned to this project") }},
	{"salary_payments", func(string) *Error { return Validation("salary for this month is already recorded") }},
	{"email", func(string) *Error { return Validation("email already exists") }},
	{"phone", func(string) *Error { return Validation("phone number already exists") }},
}

// IsUniqueViolation reports whether err is a raw unique-constraint
// violation from the backend, for repositories that map one to a domain
// sentinel before translating.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// Translate maps a raw backend error to a typed error. Already-typed errors
// pass through unchanged so repository code can call it unconditionally;
// every raw error crosses this boundary exactly once.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return DeleteConstraint("cannot delete: dependent records exist")
		case codeUniqueViolation:
			for _, rule := range uniqueRules {
				if strings.Contains(pgErr.ConstraintName, rule.substring) || strings.Contains(pgErr.Detail, rule.substring) {
					return rule.build(pgErr.Message)
				}
			}
			return Validation("duplicate record: " + pgErr.Message)
		case codeRaiseException:
			return translateMessage(pgErr.Message, err)
		}
	}

	return translateMessage(err.Error(), err)
}

func translateMessage(msg string, cause error) *Error {
	for _, rule := range messageRules {
		if strings.Contains(msg, rule.substring) {
			return rule.build(msg)
		}
	}
	return Database("database error: "+msg, cause)
}
