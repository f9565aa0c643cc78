package salesplan

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/googlesheets"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/sheettable"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

// Plan é a aba do plano de vendas já interpretada
type Plan struct {
	Table   *sheettable.Table
	Period  domain.SalesPeriod
	Catalog []domain.CatalogEntry
}

type Service struct {
	sheets      googlesheets.SheetsIntegrator
	startMarker string
	endMarker   string
}

func New(cfg *config.Config, sheets googlesheets.SheetsIntegrator) *Service {
	return &Service{
		sheets:      sheets,
		startMarker: cfg.GoogleSheets.PeriodStartMarker,
		endMarker:   cfg.GoogleSheets.PeriodEndMarker,
	}
}

// Load lê a tabela, o período e o catálogo do plano de vendas
func (s *Service) Load(ctx context.Context) (*Plan, error) {
	grid, err := s.sheets.ReadSalesPlan(ctx)
	if err != nil {
		return nil, err
	}

	table, err := sheettable.ExtractTable(grid, domain.SalesPlanColumns())
	if err != nil {
		return nil, err
	}

	period, err := sheettable.ExtractPeriod(grid, s.startMarker, s.endMarker)
	if err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, period.Label())
	}

	catalog := Catalog(table)

	log.ForContext(ctx).WithFields(log.Fields{
		"period":   period.Label(),
		"products": len(catalog),
	}).Info("Plano de vendas carregado")

	return &Plan{Table: table, Period: period, Catalog: catalog}, nil
}

// LoadCatalog lê somente a tabela; usado pelo relatório do dia, que não depende do período
func (s *Service) LoadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	grid, err := s.sheets.ReadSalesPlan(ctx)
	if err != nil {
		return nil, err
	}

	table, err := sheettable.ExtractTable(grid, domain.SalesPlanColumns())
	if err != nil {
		return nil, err
	}

	return Catalog(table), nil
}

// Catalog monta o catálogo na ordem da tabela. Linhas sem produto em texto são ignoradas.
func Catalog(table *sheettable.Table) []domain.CatalogEntry {
	catalog := make([]domain.CatalogEntry, 0, len(table.Rows))

	for _, row := range table.Rows {
		product, ok := row.Get(domain.ColumnProduct)
		if !ok || product.Value.Kind != sheettable.KindText || product.Value.IsBlank() {
			continue
		}

		entry := domain.CatalogEntry{ProductName: product.Value.Text}
		if category, ok := row.Get(domain.ColumnCategory); ok && category.Value.Kind == sheettable.KindText {
			entry.Category = category.Value.Text
		}

		catalog = append(catalog, entry)
	}

	return catalog
}
