package http

import (
	"encoding/json"
	"net/http"

	"github.com/161corp/hr-backend-go/internal/domain/salary"
	"github.com/161corp/hr-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	CalculateSalary(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	HistoryByEmployee(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// CalculateSalary implements SalaryHandler. Nothing is persisted.
func (h *salaryHandlerImpl) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathInt64(w, r, "employeeID")
	if !ok {
		return
	}

	preview, err := h.salaryService.CalculateSalary(r.Context(), employeeID, queryInt(r, "month"), queryInt(r, "year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// RecordPayment implements SalaryHandler
func (h *salaryHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req salary.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// HistoryByEmployee implements SalaryHandler
func (h *salaryHandlerImpl) HistoryByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathInt64(w, r, "employeeID")
	if !ok {
		return
	}

	payments, err := h.salaryService.HistoryByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// ListByMonth implements SalaryHandler
func (h *salaryHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	payments, err := h.salaryService.ListByMonth(r.Context(), queryInt(r, "month"), queryInt(r, "year"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}
