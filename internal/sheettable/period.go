package sheettable

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

// aceita "01.03.2025" e "1.3.2025"
const periodParseLayout = "2.1.2006"

type PeriodNotFoundError struct {
	Missing []string
}

func (e *PeriodNotFoundError) Error() string {
	return fmt.Sprintf("marcadores de período não encontrados: %s", strings.Join(e.Missing, ", "))
}

type PeriodDateError struct {
	Marker string
	Value  string
	Err    error
}

func (e *PeriodDateError) Error() string {
	return fmt.Sprintf("data inválida ao lado do marcador %q: %q (esperado DD.MM.AAAA)", e.Marker, e.Value)
}

func (e *PeriodDateError) Unwrap() error {
	return e.Err
}

// ExtractPeriod procura os marcadores de início e fim e lê a data da célula
// imediatamente à direita de cada um, como meia-noite UTC.
func ExtractPeriod(grid Grid, startMarker, endMarker string) (domain.SalesPeriod, error) {
	var start, end *time.Time

scan:
	for _, row := range grid {
		for cellIndex, cell := range row {
			var target **time.Time
			var marker string
			switch {
			case start == nil && cell.Is(startMarker):
				target, marker = &start, startMarker
			case end == nil && cell.Is(endMarker):
				target, marker = &end, endMarker
			default:
				continue
			}

			// célula ausente ou vazia também falha no parse
			adjacent := cellAt(row, cellIndex+1)
			date, err := parsePeriodDate(adjacent)
			if err != nil {
				return domain.SalesPeriod{}, &PeriodDateError{Marker: marker, Value: adjacent.String(), Err: err}
			}
			*target = &date

			if start != nil && end != nil {
				break scan
			}
		}
	}

	var missing []string
	if start == nil {
		missing = append(missing, startMarker)
	}
	if end == nil {
		missing = append(missing, endMarker)
	}
	if len(missing) > 0 {
		return domain.SalesPeriod{}, &PeriodNotFoundError{Missing: missing}
	}

	return domain.SalesPeriod{StartDate: *start, EndDate: *end}, nil
}

func parsePeriodDate(cell Cell) (time.Time, error) {
	return time.ParseInLocation(periodParseLayout, strings.TrimSpace(cell.String()), time.UTC)
}
