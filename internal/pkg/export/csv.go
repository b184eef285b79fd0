package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Table is a flat result set with a fixed column order, the shape every
// report query produces.
type Table struct {
	Columns []string
	Rows    [][]any
}

type Result struct {
	Rows    int    `json:"rows"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

var ErrNoRows = errors.New("no rows to export")

// utf8BOM makes spreadsheet tools detect the encoding; the exported data
// contains Vietnamese names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the table to path as UTF-8 CSV with a BOM. Decimal values
// are rendered as plain numbers and nil values as empty strings. Nothing is
// written when the table has no rows.
func WriteCSV(t Table, path string) (Result, error) {
	if len(t.Rows) == 0 {
		return Result{}, ErrNoRows
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return Result{}, fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return Result{}, fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = formatCell(row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return Result{}, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Result{}, fmt.Errorf("flush csv: %w", err)
	}

	return Result{
		Rows:    len(t.Rows),
		Path:    path,
		Message: fmt.Sprintf("exported %d rows to %s", len(t.Rows), path),
	}, nil
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case decimal.Decimal:
		return val.String()
	case *decimal.Decimal:
		if val == nil {
			return ""
		}
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case *int64:
		if val == nil {
			return ""
		}
		return strconv.FormatInt(*val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}
