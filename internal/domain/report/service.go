package report

import "context"

type ReportService interface {
	// RunReport materializes one of the canned reports as an ordered-column
	// table.
	RunReport(ctx context.Context, kind Kind) (ReportResponse, error)

	// ExportReport runs the report and writes it as CSV under the export
	// directory.
	ExportReport(ctx context.Context, kind Kind) (ExportResponse, error)
}
