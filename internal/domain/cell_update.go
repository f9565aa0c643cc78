package domain

import "strconv"

// CellUpdate é uma instrução de escrita em uma célula da planilha
type CellUpdate struct {
	Column      string `json:"column"`
	Row         int    `json:"row"`
	ProductName string `json:"product_name"`
	Value       any    `json:"value"`
}

// A1 devolve a coordenada no formato "D7"
func (c CellUpdate) A1() string {
	return c.Column + strconv.Itoa(c.Row)
}
