package bonusdeduction

import (
	"context"
	"fmt"

	"github.com/161corp/hr-backend-go/internal/domain/bonusdeduction"
)

type BonusDeductionServiceImpl struct {
	bonusDeductionRepo bonusdeduction.BonusDeductionRepository
}

func NewBonusDeductionService(bonusDeductionRepo bonusdeduction.BonusDeductionRepository) bonusdeduction.BonusDeductionService {
	return &BonusDeductionServiceImpl{bonusDeductionRepo: bonusDeductionRepo}
}

// CreateBonusDeduction implements bonusdeduction.BonusDeductionService.
func (s *BonusDeductionServiceImpl) CreateBonusDeduction(ctx context.Context, req bonusdeduction.CreateBonusDeductionRequest) (bonusdeduction.MutationResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return bonusdeduction.MutationResponse{}, errs
	}

	bd, err := req.Normalize()
	if err != nil {
		return bonusdeduction.MutationResponse{}, err
	}

	id, err := s.bonusDeductionRepo.Create(ctx, bd)
	if err != nil {
		return bonusdeduction.MutationResponse{}, err
	}

	return bonusdeduction.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("%s recorded for employee %d", bd.Type, bd.EmployeeID),
	}, nil
}

// UpdateBonusDeduction implements bonusdeduction.BonusDeductionService.
func (s *BonusDeductionServiceImpl) UpdateBonusDeduction(ctx context.Context, id int64, req bonusdeduction.UpdateBonusDeductionRequest) (bonusdeduction.MutationResponse, error) {
	bd, err := req.Normalize()
	if err != nil {
		return bonusdeduction.MutationResponse{}, err
	}

	if err := s.bonusDeductionRepo.Update(ctx, id, bd); err != nil {
		return bonusdeduction.MutationResponse{}, err
	}

	return bonusdeduction.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Record %d updated", id),
	}, nil
}

// DeleteBonusDeduction implements bonusdeduction.BonusDeductionService.
func (s *BonusDeductionServiceImpl) DeleteBonusDeduction(ctx context.Context, id int64) (bonusdeduction.MutationResponse, error) {
	if err := s.bonusDeductionRepo.Delete(ctx, id); err != nil {
		return bonusdeduction.MutationResponse{}, err
	}
	return bonusdeduction.MutationResponse{
		ID:      id,
		Message: fmt.Sprintf("Record %d deleted", id),
	}, nil
}

// ListByEmployee implements bonusdeduction.BonusDeductionService.
func (s *BonusDeductionServiceImpl) ListByEmployee(ctx context.Context, filter bonusdeduction.ListBonusDeductionFilter) ([]bonusdeduction.BonusDeductionResponse, error) {
	records, err := s.bonusDeductionRepo.ListByEmployee(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]bonusdeduction.BonusDeductionResponse, 0, len(records))
	for _, bd := range records {
		responses = append(responses, bonusdeduction.ToBonusDeductionResponse(bd))
	}
	return responses, nil
}

// ListLog implements bonusdeduction.BonusDeductionService.
func (s *BonusDeductionServiceImpl) ListLog(ctx context.Context, employeeID int64) ([]bonusdeduction.LogEntryResponse, error) {
	entries, err := s.bonusDeductionRepo.ListLog(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]bonusdeduction.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, bonusdeduction.ToLogEntryResponse(e))
	}
	return responses, nil
}
