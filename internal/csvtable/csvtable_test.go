package csvtable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBasic(t *testing.T) {
	table, err := Read(strings.NewReader("Date,Details,Amount\n2024-01-02,COFFEE,-4.50\n"), ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Details", "Amount"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "COFFEE", table.Rows[0].Get("Details"))
	assert.Equal(t, "-4.50", table.Rows[0].Get("Amount"))
}

func TestReadStripsBOM(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeffDate,Amount\n2024-01-02,-4.50\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, table.Columns)
}

func TestReadTrimsHeaderWhitespace(t *testing.T) {
	table, err := Read(strings.NewReader(" Date , Amount \n2024-01-02,-4.50\n"), ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, table.Columns)
}

func TestReadRaggedRows(t *testing.T) {
	input := "Date,Details,Amount\n2024-01-02,COFFEE\n2024-01-03,SHOP,-1.00,extra\n"
	table, err := Read(strings.NewReader(input), ',')
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	// Short row: missing cells become empty strings.
	assert.Equal(t, "", table.Rows[0].Get("Amount"))
	// Long row: extra cells are dropped.
	assert.Equal(t, "-1.00", table.Rows[1].Get("Amount"))
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""), ',')
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("Date,Amount\n"), ',')
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestReadSemicolonDelimiter(t *testing.T) {
	table, err := Read(strings.NewReader("Date;Amount\n2024-01-02;-4.50\n"), ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, table.Columns)
	assert.Equal(t, "-4.50", table.Rows[0].Get("Amount"))
}

func TestGetAbsentColumn(t *testing.T) {
	row := RawRecord{"Date": "2024-01-02"}
	assert.Equal(t, "", row.Get("Amount"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Amount\n2024-01-02,-4.50\n"), 0o600))

	table, err := Load(path, ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Amount"}, table.Columns)
	require.Len(t, table.Rows, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), ',')
	assert.Error(t, err)
}
