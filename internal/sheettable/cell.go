package sheettable

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindBool
)

// Cell é o valor bruto de uma célula. Apenas o campo correspondente a Kind é válido.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
}

func EmptyCell() Cell { return Cell{Kind: KindEmpty} }
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }
func NumberCell(n float64) Cell { return Cell{Kind: KindNumber, Number: n} }
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// NewCell converte um valor vindo da API do Google Sheets
func NewCell(v any) Cell {
	switch value := v.(type) {
	case nil:
		return EmptyCell()
	case Cell:
		return value
	case string:
		return TextCell(value)
	case bool:
		return BoolCell(value)
	case float64:
		return NumberCell(value)
	case float32:
		return NumberCell(float64(value))
	case int:
		return NumberCell(float64(value))
	case int64:
		return NumberCell(float64(value))
	case json.Number:
		n, err := value.Float64()
		if err != nil {
			return TextCell(value.String())
		}
		return NumberCell(n)
	default:
		return TextCell(fmt.Sprint(value))
	}
}

// String devolve a visão textual usada nas comparações
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

func (c Cell) IsBlank() bool {
	return c.Kind == KindEmpty || strings.TrimSpace(c.String()) == ""
}

// Is compara com um texto de forma exata (case-sensitive)
func (c Cell) Is(text string) bool {
	return c.Kind == KindText && c.Text == text
}

// Grid é o conteúdo de uma aba, linha a linha
type Grid [][]Cell

func NewGrid(values [][]any) Grid {
	grid := make(Grid, len(values))
	for i, row := range values {
		cells := make([]Cell, len(row))
		for j, value := range row {
			cells[j] = NewCell(value)
		}
		grid[i] = cells
	}
	return grid
}

// TextGrid monta uma Grid a partir de textos, útil para testes e planilhas exportadas
func TextGrid(rows [][]string) Grid {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, value := range row {
			if value == "" {
				cells[j] = EmptyCell()
				continue
			}
			cells[j] = TextCell(value)
		}
		grid[i] = cells
	}
	return grid
}

func isBlankRow(row []Cell) bool {
	for _, cell := range row {
		if !cell.IsBlank() {
			return false
		}
	}
	return true
}

func cellAt(row []Cell, index int) Cell {
	if index < 0 || index >= len(row) {
		return EmptyCell()
	}
	return row[index]
}
