// Package tabular holds the in-memory representation of an uploaded extract
// and the transformations applied before persistence: loading, synthetic
// identity assignment, and schema validation.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrInvalidInput means the path is unreadable or the extension is not a
	// recognized tabular format.
	ErrInvalidInput = errors.New("invalid input file")

	// ErrEmptyTable means the file parsed cleanly but contains no data rows.
	ErrEmptyTable = errors.New("table is empty")

	// ErrSchemaValidation means the table does not expose all required
	// columns for its dimension kind.
	ErrSchemaValidation = errors.New("required columns missing")
)

// Row is one record of an extract, keyed by column name. Values stay as the
// raw cell text; typed conversion happens per dimension kind.
type Row map[string]string

// Table is an ordered, fully materialized tabular extract. Columns preserves
// the header order of the source file.
type Table struct {
	Columns []string
	Rows    []Row
}

// IdentifiedRow is a table row with its synthetic identity attached.
type IdentifiedRow struct {
	ID  int64
	Row Row
}

// Load reads the file at path fully into memory. The format is detected by
// extension: ".csv" and ".xlsx" are recognized. An unrecognized extension or
// an unreadable file yields ErrInvalidInput; a table with a header but no
// data rows yields ErrEmptyTable.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: unrecognized extension %q", ErrInvalidInput, filepath.Ext(path))
	}
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fromRecords(records)
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 || len(records) == 1 {
		return nil, ErrEmptyTable
	}
	columns := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				// xlsx rows omit trailing empty cells
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// RequireColumns accepts the table iff every column in required is present as
// a column name. Extra columns are fine; cell types and values are not
// inspected. The returned error wraps ErrSchemaValidation and names the
// missing columns.
func RequireColumns(t *Table, required []string) error {
	if t == nil {
		return fmt.Errorf("%w: no table", ErrInvalidInput)
	}
	present := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		present[col] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrSchemaValidation, strings.Join(missing, ", "))
	}
	return nil
}

// AssignIDs attaches a synthetic identity to every row: 1..N in the table's
// current row order. The identities are densely packed within one assignment
// pass but are not stable across re-ingestions of the same logical entities.
func AssignIDs(t *Table) ([]IdentifiedRow, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no table", ErrInvalidInput)
	}
	if len(t.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	identified := make([]IdentifiedRow, len(t.Rows))
	for i, row := range t.Rows {
		identified[i] = IdentifiedRow{ID: int64(i) + 1, Row: row}
	}
	return identified, nil
}

// DropIDs is the inverse of AssignIDs: it returns the bare rows in order.
func DropIDs(rows []IdentifiedRow) []Row {
	bare := make([]Row, len(rows))
	for i, r := range rows {
		bare[i] = r.Row
	}
	return bare
}
