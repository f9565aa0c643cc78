package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	DocumentTypeRetailDemand DocumentType = "retaildemand"
	DocumentTypeDemand       DocumentType = "demand"
)

type GroupBy string

const (
	GroupByProduct GroupBy = "product"
	GroupByVariant GroupBy = "variant"
)

// TurnoverFilters descreve uma consulta ao relatório de giro do ERP.
// Campos opcionais vazios não são enviados.
type TurnoverFilters struct {
	MomentFrom     time.Time
	MomentTo       time.Time
	Type           DocumentType
	RetailStore    string
	Store          string
	Limit          int
	Offset         int
	GroupBy        GroupBy
	AcceptTimezone string
}

// TurnoverLine é uma linha vendida no período consultado
type TurnoverLine struct {
	AssortmentName string          `json:"assortment_name"`
	CategoryName   string          `json:"category_name,omitempty"`
	Code           string          `json:"code,omitempty"`
	Article        string          `json:"article,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Sum            decimal.Decimal `json:"sum"`
}

type Pagination struct {
	Size   int `json:"size"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type TurnoverPage struct {
	Lines           []TurnoverLine `json:"lines"`
	Pagination      Pagination     `json:"pagination"`
	ContentTimezone string         `json:"content_timezone,omitempty"`
}
