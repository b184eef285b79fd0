package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	FullName     string
	Gender       Gender
	DOB          *time.Time
	Phone        string
	Email        string
	Address      *string
	Position     string
	HireDate     time.Time
	BaseSalary   decimal.Decimal
	DepartmentID *int64

	// Populated by list queries that join the departments table.
	DepartmentName     *string
	DepartmentLocation *string
}

type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)
