package aggregating

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

// Merge soma as vendas recebidas ao snapshot da loja e devolve um novo snapshot.
// Nenhum dos argumentos é alterado.
func Merge(existing *domain.StoreSalesSnapshot, storeName string, incoming map[string]*domain.ProductSales) *domain.StoreSalesSnapshot {
	merged := domain.NewStoreSalesSnapshot(storeName)

	if existing != nil {
		merged.StoreName = existing.StoreName
		merged.Address = existing.Address
		merged.TotalSalesCount = existing.TotalSalesCount
		for name, sales := range existing.Products {
			merged.Products[name] = sales.Clone()
		}
	}

	for name, sales := range incoming {
		if sales == nil {
			continue
		}

		current, ok := merged.Products[name]
		if !ok {
			merged.Products[name] = sales.Clone()
		} else {
			current.SalesCount = current.SalesCount.Add(sales.SalesCount)
			for lineName, quantity := range sales.ContributingLines {
				current.ContributingLines[lineName] = current.ContributingLines[lineName].Add(quantity)
			}
		}

		merged.TotalSalesCount = merged.TotalSalesCount.Add(sales.SalesCount)
	}

	return merged
}

// TotalAcrossStores soma cada produto do catálogo em todas as lojas; ausentes valem zero
func TotalAcrossStores(snapshots []*domain.StoreSalesSnapshot, productNames []string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(productNames))

	for _, name := range productNames {
		total := decimal.Zero
		for _, snapshot := range snapshots {
			if snapshot == nil {
				continue
			}
			if sales, ok := snapshot.Products[name]; ok {
				total = total.Add(sales.SalesCount)
			}
		}
		totals[name] = total
	}

	return totals
}
