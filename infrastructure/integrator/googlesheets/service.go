package googlesheets

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/googlesheets/sheetsclient"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/sheettable"
)

type SheetsIntegrator interface {
	ReadSalesPlan(ctx context.Context) (sheettable.Grid, error)
	WriteCells(ctx context.Context, updates []domain.CellUpdate) (int64, error)
	UpdateCell(ctx context.Context, update domain.CellUpdate) error
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// ReadSalesPlan lê a aba inteira do plano de vendas
func (s *SheetsService) ReadSalesPlan(ctx context.Context) (sheettable.Grid, error) {
	values, err := s.Client.ReadRange(ctx, s.cfg.GoogleSheets.SalesPlanSheetID, SheetRange(s.cfg.GoogleSheets.SalesPlanSheetName, ""))
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a aba %q do plano de vendas", s.cfg.GoogleSheets.SalesPlanSheetName)
	}

	return sheettable.NewGrid(values), nil
}

func (s *SheetsService) WriteCells(ctx context.Context, updates []domain.CellUpdate) (int64, error) {
	values := make([]sheetsclient.ValueUpdate, 0, len(updates))
	for _, update := range updates {
		values = append(values, sheetsclient.ValueUpdate{
			Range: SheetRange(s.cfg.GoogleSheets.SalesPlanSheetName, update.A1()),
			Value: update.Value,
		})
	}

	updated, err := s.Client.BatchUpdate(ctx, s.cfg.GoogleSheets.SalesPlanSheetID, values)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao gravar o plano de vendas")
	}

	logrus.WithField("cells", updated).Info("google sheets: plano de vendas atualizado")

	return updated, nil
}

func (s *SheetsService) UpdateCell(ctx context.Context, update domain.CellUpdate) error {
	cell := SheetRange(s.cfg.GoogleSheets.SalesPlanSheetName, update.A1())
	if err := s.Client.UpdateCell(ctx, s.cfg.GoogleSheets.SalesPlanSheetID, cell, update.Value); err != nil {
		return errors.Wrapf(err, "erro ao atualizar %s", update.ProductName)
	}
	return nil
}

// SheetRange monta a notação A1 com o nome da aba entre aspas.
// Com cell vazio o intervalo é a aba inteira.
func SheetRange(sheetName, cell string) string {
	quoted := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	if cell == "" {
		return quoted
	}
	return quoted + "!" + cell
}
