package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	_, err := WriteCSV(Table{Columns: []string{"a", "b"}}, path)
	require.ErrorIs(t, err, ErrNoRows)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written for an empty table")
}

func TestWriteCSVNullsAndDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := Table{
		Columns: []string{"a", "b"},
		Rows:    [][]any{{int64(1), nil}},
	}

	result, err := WriteCSV(table, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)
	assert.Equal(t, path, result.Path)
	assert.Contains(t, result.Message, "1 rows")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "file must start with a UTF-8 BOM")

	body := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "a,b\n1,\n", body)
}

func TestWriteCSVCellFormatting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cells.csv")
	salary := decimal.NewFromInt(1500)
	hired := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	var noEnd *time.Time
	var noNote *string

	table := Table{
		Columns: []string{"name", "salary", "hired", "ended", "note"},
		Rows: [][]any{
			{"Nguyễn Văn A", salary, hired, noEnd, noNote},
			{"Trần B", &salary, hired, &hired, "ok"},
		},
	}

	_, err := WriteCSV(table, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t,
		"name,salary,hired,ended,note\n"+
			"Nguyễn Văn A,1500,2024-03-15,,\n"+
			"Trần B,1500,2024-03-15,2024-03-15,ok\n",
		body)
}
