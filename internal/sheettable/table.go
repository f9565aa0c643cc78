package sheettable

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

type CellRecord struct {
	Position Position `json:"position"`
	Value    Cell     `json:"value"`
}

type Row struct {
	Cells map[string]CellRecord `json:"cells"`
}

func (r Row) Get(column string) (CellRecord, bool) {
	cell, ok := r.Cells[column]
	return cell, ok
}

type Column struct {
	Name     string   `json:"name"`
	Index    int      `json:"index"`
	Position Position `json:"position"`
}

// Table é a tabela encontrada a partir da linha de cabeçalho
type Table struct {
	Rows           []Row          `json:"rows"`
	Columns        []Column       `json:"columns"`
	TotalRows      int            `json:"total_rows"`
	HeaderRowIndex int            `json:"header_row_index"` // 1-based
	ColumnMappings map[string]int `json:"column_mappings"`
}

func (t *Table) Column(name string) (Column, bool) {
	for _, column := range t.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return Column{}, false
}

// FindRow devolve a primeira linha cujo texto na coluna é exatamente value
func (t *Table) FindRow(column, value string) (Row, bool) {
	for _, row := range t.Rows {
		cell, ok := row.Get(column)
		if ok && cell.Value.Is(value) {
			return row, true
		}
	}
	return Row{}, false
}

type HeadersNotFoundError struct {
	Searched []string
	Missing  []string
}

func (e *HeadersNotFoundError) Error() string {
	return fmt.Sprintf(
		"cabeçalhos da tabela não encontrados. Procurando: %s. Ausentes: %s",
		strings.Join(e.Searched, ", "),
		strings.Join(e.Missing, ", "),
	)
}

type header struct {
	name  string
	index int
}

// ExtractTable localiza a primeira linha que contém todos os cabeçalhos
// obrigatórios e monta as linhas seguintes até a primeira linha em branco.
func ExtractTable(grid Grid, required []string) (*Table, error) {
	headerRow := -1
	var headers []header

	// melhor candidata apenas para a mensagem de erro
	bestMatches := 0
	var bestHeaders []header

	for rowIndex, row := range grid {
		found := matchHeaders(row, required)
		if len(found) == len(required) {
			headerRow = rowIndex
			headers = found
			break
		}
		if len(found) > bestMatches {
			bestMatches = len(found)
			bestHeaders = found
		}
	}

	if headerRow == -1 {
		return nil, &HeadersNotFoundError{
			Searched: required,
			Missing:  missingHeaders(required, bestHeaders),
		}
	}

	log.L.Debugf("sheettable: cabeçalhos encontrados na linha %d", headerRow+1)

	columns := make([]Column, 0, len(headers))
	mappings := make(map[string]int, len(headers))
	for _, h := range headers {
		letter, err := ColumnLetter(h.index)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{
			Name:     h.name,
			Index:    h.index,
			Position: Position{Letter: letter, Number: h.index + 1},
		})
		mappings[h.name] = h.index
	}

	rows := make([]Row, 0)
	for rowIndex := headerRow + 1; rowIndex < len(grid); rowIndex++ {
		row := grid[rowIndex]
		if isBlankRow(row) {
			log.L.Debugf("sheettable: leitura interrompida na linha %d (linha em branco)", rowIndex+1)
			break
		}

		cells := make(map[string]CellRecord, len(columns))
		for _, column := range columns {
			cells[column.Name] = CellRecord{
				Position: Position{Letter: column.Position.Letter, Number: rowIndex + 1},
				Value:    cellAt(row, column.Index),
			}
		}
		rows = append(rows, Row{Cells: cells})
	}

	return &Table{
		Rows:           rows,
		Columns:        columns,
		TotalRows:      len(rows),
		HeaderRowIndex: headerRow + 1,
		ColumnMappings: mappings,
	}, nil
}

func matchHeaders(row []Cell, required []string) []header {
	found := make([]header, 0, len(required))
	for _, name := range required {
		for index, cell := range row {
			if cell.Is(name) {
				found = append(found, header{name: name, index: index})
				break
			}
		}
	}
	return found
}

func missingHeaders(required []string, found []header) []string {
	present := make(map[string]bool, len(found))
	for _, h := range found {
		present[h.name] = true
	}

	missing := make([]string, 0, len(required))
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
