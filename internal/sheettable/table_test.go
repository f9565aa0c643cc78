package sheettable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planColumns = []string{"Категория", "Товар", "Продано"}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			letter, err := ColumnLetter(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, letter)

			index, err := ColumnIndex(letter)
			require.NoError(t, err)
			assert.Equal(t, tt.index, index)
		})
	}

	_, err := ColumnLetter(-1)
	assert.Error(t, err)
}

func TestExtractTable(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		validate func(t *testing.T, table *Table, err error)
	}{
		{
			name: "cabeçalho na primeira linha",
			grid: TextGrid([][]string{
				{"Категория", "Товар", "Продано"},
				{"Жидкости", "Pod X", "3"},
				{"", "Pod Y", "1"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, table.HeaderRowIndex)
				assert.Equal(t, 2, table.TotalRows)
				assert.Len(t, table.Rows, 2)

				cell, ok := table.Rows[0].Get("Товар")
				require.True(t, ok)
				assert.Equal(t, "Pod X", cell.Value.String())
				assert.Equal(t, Position{Letter: "B", Number: 2}, cell.Position)

				sold, ok := table.Rows[1].Get("Продано")
				require.True(t, ok)
				assert.Equal(t, "C3", sold.Position.A1())
			},
		},
		{
			name: "cabeçalho em qualquer posição e ordem",
			grid: TextGrid([][]string{
				{"План продаж"},
				{"Начало периода", "01.03.2025"},
				{},
				{"", "", "Продано", "Товар", "x", "Категория"},
				{"", "", "5", "Pod X", "", "Жидкости"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				assert.Equal(t, 4, table.HeaderRowIndex)
				assert.Equal(t, map[string]int{"Категория": 5, "Товар": 3, "Продано": 2}, table.ColumnMappings)

				column, ok := table.Column("Категория")
				require.True(t, ok)
				assert.Equal(t, Position{Letter: "F", Number: 6}, column.Position)

				cell, _ := table.Rows[0].Get("Продано")
				assert.Equal(t, "C5", cell.Position.A1())
			},
		},
		{
			name: "linha com cabeçalho parcial nunca é usada",
			grid: TextGrid([][]string{
				{"Товар", "Продано"},
				{"Pod A", "1"},
				{"Категория", "Товар", "Продано"},
				{"Жидкости", "Pod X", "2"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, table.HeaderRowIndex)
				require.Len(t, table.Rows, 1)
				cell, _ := table.Rows[0].Get("Товар")
				assert.Equal(t, "Pod X", cell.Value.String())
			},
		},
		{
			name: "para na primeira linha em branco",
			grid: TextGrid([][]string{
				{"Категория", "Товар", "Продано"},
				{"", "Pod A", "1"},
				{"", "Pod B", "2"},
				{"", "   ", ""},
				{"", "Pod C", "3"},
				{"", "Pod D", "4"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, table.TotalRows)
				_, found := table.FindRow("Товар", "Pod C")
				assert.False(t, found)
			},
		},
		{
			name: "linha vazia da API também encerra a tabela",
			grid: Grid{
				{TextCell("Категория"), TextCell("Товар"), TextCell("Продано")},
				{TextCell("Жидкости"), TextCell("Pod A"), NumberCell(1)},
				{},
				{TextCell("Жидкости"), TextCell("Pod B"), NumberCell(2)},
			},
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, table.TotalRows)
			},
		},
		{
			name: "linhas curtas preenchem colunas ausentes com vazio",
			grid: TextGrid([][]string{
				{"Категория", "Товар", "Продано"},
				{"Жидкости", "Pod A"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.NoError(t, err)
				cell, ok := table.Rows[0].Get("Продано")
				require.True(t, ok)
				assert.True(t, cell.Value.IsBlank())
				assert.Equal(t, "C2", cell.Position.A1())
			},
		},
		{
			name: "comparação de cabeçalho é exata",
			grid: TextGrid([][]string{
				{"категория", "Товар ", "Продано"},
			}),
			validate: func(t *testing.T, table *Table, err error) {
				require.Error(t, err)
				var headersErr *HeadersNotFoundError
				require.ErrorAs(t, err, &headersErr)
				assert.Equal(t, []string{"Категория", "Товар"}, headersErr.Missing)
				assert.Contains(t, err.Error(), "Категория, Товар, Продано")
			},
		},
		{
			name: "sem cabeçalho",
			grid: TextGrid([][]string{{"a", "b"}}),
			validate: func(t *testing.T, table *Table, err error) {
				var headersErr *HeadersNotFoundError
				require.ErrorAs(t, err, &headersErr)
				assert.Equal(t, planColumns, headersErr.Missing)
				assert.Nil(t, table)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ExtractTable(tt.grid, planColumns)
			tt.validate(t, table, err)
		})
	}
}

func TestExtractTable_BlankRowStopsAfterNRecords(t *testing.T) {
	rows := [][]string{{"Категория", "Товар", "Продано"}}
	for i := 0; i < 7; i++ {
		rows = append(rows, []string{"", "N", "1"})
	}
	rows = append(rows, []string{"", "", ""})
	for i := 0; i < 4; i++ {
		rows = append(rows, []string{"", "M", "1"})
	}

	table, err := ExtractTable(TextGrid(rows), planColumns)
	require.NoError(t, err)
	assert.Equal(t, 7, table.TotalRows)
	for i, row := range table.Rows {
		cell, _ := row.Get("Товар")
		assert.Equal(t, i+2, cell.Position.Number)
	}
}

func TestNewGrid(t *testing.T) {
	grid := NewGrid([][]any{
		{"Товар", 12.5, true, nil, ""},
	})

	require.Len(t, grid, 1)
	assert.Equal(t, KindText, grid[0][0].Kind)
	assert.Equal(t, KindNumber, grid[0][1].Kind)
	assert.Equal(t, "12.5", grid[0][1].String())
	assert.Equal(t, KindBool, grid[0][2].Kind)
	assert.Equal(t, "true", grid[0][2].String())
	assert.True(t, grid[0][3].IsBlank())
	assert.True(t, grid[0][4].IsBlank())
	assert.False(t, grid[0][1].Is("12.5"))
}
