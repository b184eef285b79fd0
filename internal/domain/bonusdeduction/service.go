package bonusdeduction

import "context"

type BonusDeductionService interface {
	CreateBonusDeduction(ctx context.Context, req CreateBonusDeductionRequest) (MutationResponse, error)
	UpdateBonusDeduction(ctx context.Context, id int64, req UpdateBonusDeductionRequest) (MutationResponse, error)
	DeleteBonusDeduction(ctx context.Context, id int64) (MutationResponse, error)
	ListByEmployee(ctx context.Context, filter ListBonusDeductionFilter) ([]BonusDeductionResponse, error)
	// ListLog returns the append-only audit trail for an employee.
	ListLog(ctx context.Context, employeeID int64) ([]LogEntryResponse, error)
}
