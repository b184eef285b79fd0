package bonusdeduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type BonusDeduction struct {
	ID          int64
	EmployeeID  int64
	Type        Type
	Amount      decimal.Decimal
	Description *string
	Date        time.Time

	// Populated by list queries.
	EmployeeName string
}

type Type string

const (
	TypeBonus     Type = "Bonus"
	TypeDeduction Type = "Deduction"
)

// LogEntry mirrors a row of the append-only bonus_deduction_log table.
type LogEntry struct {
	ID               int64
	BonusDeductionID int64
	EmployeeID       int64
	Action           string
	Amount           decimal.Decimal
	LoggedAt         time.Time
}
