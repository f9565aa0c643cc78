package domain

import "github.com/shopspring/decimal"

type EfficiencyProduct struct {
	Name     string          `json:"name"`
	Code     string          `json:"code,omitempty"`
	Article  string          `json:"article,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Sum      decimal.Decimal `json:"sum"`
	IsTarget bool            `json:"is_target"`
}

// EfficiencyReport compara a venda de produtos alvo com o total vendido
type EfficiencyReport struct {
	Date                 string              `json:"date"`
	RetailStore          string              `json:"retail_store"`
	TotalSales           decimal.Decimal     `json:"total_sales"`
	TargetSales          decimal.Decimal     `json:"target_sales"`
	EfficiencyPercentage float64             `json:"efficiency_percentage"`
	Products             []EfficiencyProduct `json:"products"`
	TargetProducts       []EfficiencyProduct `json:"target_products"`
	ExcludedProducts     []EfficiencyProduct `json:"excluded_products"`
}
