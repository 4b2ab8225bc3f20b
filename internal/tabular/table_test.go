package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempFile(t, "sellers.csv",
		"seller_id,seller_city\ns1,sao paulo\ns2,rio de janeiro\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"seller_id", "seller_city"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "s1", table.Rows[0]["seller_id"])
	assert.Equal(t, "rio de janeiro", table.Rows[1]["seller_city"])
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "seller_id,seller_city\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func writeTempXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "extract.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{
		{"seller_id", "seller_city", "seller_state"},
		{"s1", "sao paulo", "SP"},
		{"s2", "rio de janeiro", ""},
	})

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"seller_id", "seller_city", "seller_state"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "s1", table.Rows[0]["seller_id"])
	assert.Equal(t, "SP", table.Rows[0]["seller_state"])
	// The sheet reader omits trailing empty cells; the row still carries
	// every header column.
	assert.Equal(t, "", table.Rows[1]["seller_state"])
}

func TestLoadXLSX_MatchesCSV(t *testing.T) {
	content := [][]interface{}{
		{"seller_id", "seller_city"},
		{"s1", "sao paulo"},
		{"s2", "rio de janeiro"},
	}
	xlsxPath := writeTempXLSX(t, content)
	csvPath := writeTempFile(t, "sellers.csv",
		"seller_id,seller_city\ns1,sao paulo\ns2,rio de janeiro\n")

	fromXLSX, err := Load(xlsxPath)
	require.NoError(t, err)
	fromCSV, err := Load(csvPath)
	require.NoError(t, err)
	assert.Equal(t, fromCSV, fromXLSX, "the two formats parse to the same table")
}

func TestLoadXLSX_HeaderOnly(t *testing.T) {
	path := writeTempXLSX(t, [][]interface{}{{"seller_id", "seller_city"}})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestLoad_UnrecognizedExtension(t *testing.T) {
	path := writeTempFile(t, "sellers.json", `{"seller_id": "s1"}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssignIDs(t *testing.T) {
	table := &Table{
		Columns: []string{"seller_id"},
		Rows:    []Row{{"seller_id": "a"}, {"seller_id": "b"}, {"seller_id": "c"}},
	}

	rows, err := AssignIDs(table)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, int64(i)+1, row.ID, "ids are densely packed 1..N in row order")
	}
	assert.Equal(t, "b", rows[1].Row["seller_id"])
}

func TestAssignIDs_RoundTrip(t *testing.T) {
	table := &Table{
		Columns: []string{"x", "y"},
		Rows:    []Row{{"x": "1", "y": "2"}, {"x": "3", "y": "4"}},
	}

	rows, err := AssignIDs(table)
	require.NoError(t, err)
	assert.Equal(t, table.Rows, DropIDs(rows))
}

func TestAssignIDs_EmptyTable(t *testing.T) {
	_, err := AssignIDs(&Table{Columns: []string{"x"}})
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestAssignIDs_NilTable(t *testing.T) {
	_, err := AssignIDs(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRequireColumns(t *testing.T) {
	table := &Table{Columns: []string{"a", "b", "c"}}

	assert.NoError(t, RequireColumns(table, []string{"a", "b"}), "supersets are accepted")
	assert.NoError(t, RequireColumns(table, []string{"a", "b", "c"}))

	err := RequireColumns(table, []string{"a", "d"})
	require.ErrorIs(t, err, ErrSchemaValidation)
	assert.Contains(t, err.Error(), "d")
}
