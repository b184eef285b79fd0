package http

import (
	"net/http"

	"github.com/161corp/hr-backend-go/internal/domain/report"
	"github.com/161corp/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	RunReport(w http.ResponseWriter, r *http.Request)
	ExportReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// RunReport implements ReportHandler
func (h *reportHandlerImpl) RunReport(w http.ResponseWriter, r *http.Request) {
	kind := report.Kind(chi.URLParam(r, "kind"))

	result, err := h.reportService.RunReport(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportReport implements ReportHandler
func (h *reportHandlerImpl) ExportReport(w http.ResponseWriter, r *http.Request) {
	kind := report.Kind(chi.URLParam(r, "kind"))

	result, err := h.reportService.ExportReport(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
