package http

import (
	"encoding/json"
	"net/http"

	"github.com/161corp/hr-backend-go/internal/domain/bonusdeduction"
	"github.com/161corp/hr-backend-go/internal/handler/http/response"
)

type BonusDeductionHandler interface {
	CreateBonusDeduction(w http.ResponseWriter, r *http.Request)
	UpdateBonusDeduction(w http.ResponseWriter, r *http.Request)
	DeleteBonusDeduction(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListLog(w http.ResponseWriter, r *http.Request)
}

type bonusDeductionHandlerImpl struct {
	bonusDeductionService bonusdeduction.BonusDeductionService
}

func NewBonusDeductionHandler(bonusDeductionService bonusdeduction.BonusDeductionService) BonusDeductionHandler {
	return &bonusDeductionHandlerImpl{bonusDeductionService: bonusDeductionService}
}

// CreateBonusDeduction implements BonusDeductionHandler
func (h *bonusDeductionHandlerImpl) CreateBonusDeduction(w http.ResponseWriter, r *http.Request) {
	var req bonusdeduction.CreateBonusDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bonusDeductionService.CreateBonusDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// UpdateBonusDeduction implements BonusDeductionHandler
func (h *bonusDeductionHandlerImpl) UpdateBonusDeduction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req bonusdeduction.UpdateBonusDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.bonusDeductionService.UpdateBonusDeduction(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// DeleteBonusDeduction implements BonusDeductionHandler
func (h *bonusDeductionHandlerImpl) DeleteBonusDeduction(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	result, err := h.bonusDeductionService.DeleteBonusDeduction(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// ListByEmployee implements BonusDeductionHandler
func (h *bonusDeductionHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathInt64(w, r, "employeeID")
	if !ok {
		return
	}

	filter := bonusdeduction.ListBonusDeductionFilter{
		EmployeeID: employeeID,
		Month:      queryInt(r, "month"),
		Year:       queryInt(r, "year"),
	}

	records, err := h.bonusDeductionService.ListByEmployee(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListLog implements BonusDeductionHandler
func (h *bonusDeductionHandlerImpl) ListLog(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathInt64(w, r, "employeeID")
	if !ok {
		return
	}

	entries, err := h.bonusDeductionService.ListLog(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
