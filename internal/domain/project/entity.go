package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	Budget    decimal.Decimal

	// Populated from the participation view.
	EmployeeCount int64
	TotalHours    decimal.Decimal
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)
