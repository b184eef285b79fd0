package bonusdeduction

import "context"

type BonusDeductionRepository interface {
	Create(ctx context.Context, bd BonusDeduction) (int64, error)
	Update(ctx context.Context, id int64, bd BonusDeduction) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (BonusDeduction, error)
	ListByEmployee(ctx context.Context, filter ListBonusDeductionFilter) ([]BonusDeduction, error)
	ListLog(ctx context.Context, employeeID int64) ([]LogEntry, error)
}
