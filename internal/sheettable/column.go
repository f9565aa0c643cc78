package sheettable

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

type Position struct {
	Letter string `json:"letter"`
	Number int    `json:"number"`
}

func (p Position) A1() string {
	return p.Letter + strconv.Itoa(p.Number)
}

// ColumnLetter converte o índice 0-based da coluna para letras (0 -> A, 25 -> Z, 26 -> AA)
func ColumnLetter(index int) (string, error) {
	letter, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return "", fmt.Errorf("índice de coluna inválido %d: %w", index, err)
	}
	return letter, nil
}

// ColumnIndex faz o caminho inverso de ColumnLetter
func ColumnIndex(letter string) (int, error) {
	number, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return 0, err
	}
	return number - 1, nil
}
