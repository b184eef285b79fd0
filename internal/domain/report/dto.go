package report

import "github.com/161corp/hr-backend-go/internal/pkg/export"

type ReportResponse struct {
	Kind    Kind     `json:"kind"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type ExportResponse struct {
	Kind    Kind   `json:"kind"`
	Rows    int    `json:"rows"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func ToReportResponse(kind Kind, t export.Table) ReportResponse {
	return ReportResponse{Kind: kind, Columns: t.Columns, Rows: t.Rows}
}

func ToExportResponse(kind Kind, r export.Result) ExportResponse {
	return ExportResponse{Kind: kind, Rows: r.Rows, Path: r.Path, Message: r.Message}
}
