package domain

import "github.com/shopspring/decimal"

// ProductSales acumula as vendas de um produto do catálogo
type ProductSales struct {
	ProductName       string                     `json:"product_name"`
	SalesCount        decimal.Decimal            `json:"sales_count"`
	ContributingLines map[string]decimal.Decimal `json:"contributing_lines"`
}

func NewProductSales(productName string) *ProductSales {
	return &ProductSales{
		ProductName:       productName,
		SalesCount:        decimal.Zero,
		ContributingLines: make(map[string]decimal.Decimal),
	}
}

// Add soma a quantidade de uma linha do ERP ao acumulador
func (p *ProductSales) Add(lineName string, quantity decimal.Decimal) {
	p.SalesCount = p.SalesCount.Add(quantity)
	p.ContributingLines[lineName] = p.ContributingLines[lineName].Add(quantity)
}

func (p *ProductSales) Clone() *ProductSales {
	clone := NewProductSales(p.ProductName)
	clone.SalesCount = p.SalesCount
	for name, quantity := range p.ContributingLines {
		clone.ContributingLines[name] = quantity
	}
	return clone
}

// StoreSalesSnapshot é o estado agregado de uma loja em um ciclo
type StoreSalesSnapshot struct {
	StoreName       string                   `json:"store_name"`
	Address         string                   `json:"address,omitempty"`
	TotalSalesCount decimal.Decimal          `json:"total_sales_count"`
	Products        map[string]*ProductSales `json:"products"`
}

func NewStoreSalesSnapshot(storeName string) *StoreSalesSnapshot {
	return &StoreSalesSnapshot{
		StoreName:       storeName,
		TotalSalesCount: decimal.Zero,
		Products:        make(map[string]*ProductSales),
	}
}

// StoreReport é o resultado do dia de uma loja, usado nas mensagens
type StoreReport struct {
	Address string                   `json:"address"`
	Sales   map[string]*ProductSales `json:"sales"`
}

// SalesCountByProduct achata o relatório em produto -> quantidade
func (r StoreReport) SalesCountByProduct() map[string]decimal.Decimal {
	counts := make(map[string]decimal.Decimal, len(r.Sales))
	for name, sales := range r.Sales {
		counts[name] = sales.SalesCount
	}
	return counts
}
