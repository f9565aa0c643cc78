package reporting

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/sheettable"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

// WriteBack gera uma atualização da coluna "Продано" para cada produto do
// catálogo que tem linha na tabela. Produtos sem linha voltam em misses.
func WriteBack(
	ctx context.Context,
	table *sheettable.Table,
	productNames []string,
	totals map[string]decimal.Decimal,
) ([]domain.CellUpdate, []string) {
	updates := make([]domain.CellUpdate, 0, len(productNames))
	misses := make([]string, 0)

	for _, name := range productNames {
		row, ok := table.FindRow(domain.ColumnProduct, name)
		if !ok {
			misses = append(misses, name)
			log.ForContext(ctx).Warnf("Produto %q não encontrado na tabela do plano de vendas", name)
			continue
		}

		sold, ok := row.Get(domain.ColumnSold)
		if !ok {
			misses = append(misses, name)
			continue
		}

		updates = append(updates, domain.CellUpdate{
			Column:      sold.Position.Letter,
			Row:         sold.Position.Number,
			ProductName: name,
			Value:       CellValue(totals[name]),
		})
	}

	return updates, misses
}

// CellValue grava inteiros como int64 e o resto como float64
func CellValue(value decimal.Decimal) any {
	if value.IsInteger() {
		return value.IntPart()
	}
	f, _ := value.Float64()
	return f
}
