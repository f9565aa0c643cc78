package moysklad

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/moyskladclient"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

type MoySkladIntegrator interface {
	FetchTurnover(ctx context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error)
	ListRetailStores(ctx context.Context) ([]domain.RetailStore, error)
}

type MoySkladService struct {
	cfg    *config.Config
	Client moyskladclient.Client
}

func New(cfg *config.Config, client moyskladclient.Client) MoySkladIntegrator {
	return &MoySkladService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchTurnover busca uma página do relatório de giro e converte as linhas
// para o domínio. Somente linhas com saída (vendas) são devolvidas.
func (s *MoySkladService) FetchTurnover(ctx context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error) {
	if filters.AcceptTimezone == "" {
		filters.AcceptTimezone = s.cfg.MoySklad.AcceptTimezone
	}

	report, err := s.Client.GetTurnover(ctx, filters)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar giro da loja %q", filters.RetailStore)
	}

	page := &domain.TurnoverPage{
		Lines: make([]domain.TurnoverLine, 0, len(report.Rows)),
		Pagination: domain.Pagination{
			Size:   report.Meta.Size,
			Limit:  report.Meta.Limit,
			Offset: report.Meta.Offset,
		},
		ContentTimezone: report.ContentTimezone,
	}

	for _, row := range report.Rows {
		if row.Outcome.Quantity == 0 {
			continue
		}
		page.Lines = append(page.Lines, toTurnoverLine(row))
	}

	logrus.WithFields(logrus.Fields{
		"store": filters.RetailStore,
		"lines": len(page.Lines),
	}).Debug("moysklad: giro convertido")

	return page, nil
}

func (s *MoySkladService) ListRetailStores(ctx context.Context) ([]domain.RetailStore, error) {
	list, err := s.Client.GetRetailStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar pontos de venda")
	}

	stores := make([]domain.RetailStore, 0, len(list.Rows))
	for _, row := range list.Rows {
		if row.Archived && s.cfg.MoySklad.SkipArchived {
			continue
		}
		stores = append(stores, toRetailStore(row))
	}

	return stores, nil
}

func toTurnoverLine(row moyskladdomain.TurnoverRow) domain.TurnoverLine {
	return domain.TurnoverLine{
		AssortmentName: row.Assortment.Name,
		CategoryName:   row.Assortment.CategoryName(),
		Code:           row.Assortment.Code,
		Article:        row.Assortment.Article,
		Quantity:       decimal.NewFromFloat(row.Outcome.Quantity),
		// a API devolve valores em copeques
		Sum: decimal.NewFromFloat(row.Outcome.Sum).Shift(-2),
	}
}

func toRetailStore(row moyskladdomain.RetailStore) domain.RetailStore {
	return domain.RetailStore{
		ID:       row.ID,
		Href:     row.Meta.Href,
		Name:     row.Name,
		Address:  row.Address,
		Archived: row.Archived,
	}
}
