package synchronizing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/googlesheets"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-plan-sync/infrastructure/lock"
	"github.com/vfg2006/sales-plan-sync/infrastructure/repository"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/aggregating"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reconciling"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reporting"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/salesplan"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
	"golang.org/x/sync/errgroup"
)

// ErrSyncInProgress indica que outro ciclo está em execução
var ErrSyncInProgress = errors.New("sincronização já está em andamento")

const lockKey = "sales-report"

type PeriodResult struct {
	Period    domain.SalesPeriod            `json:"period"`
	Snapshots []*domain.StoreSalesSnapshot  `json:"snapshots"`
	Totals    map[string]decimal.Decimal    `json:"totals"`
	Updates   []domain.CellUpdate           `json:"updates"`
	Misses    []string                      `json:"misses"`
	Written   int64                         `json:"written"`
	Products  []string                      `json:"products"`
	Stores    map[string]domain.RetailStore `json:"-"`
}

type DayResult struct {
	Day     string               `json:"day"`
	Reports []domain.StoreReport `json:"reports"`
}

type Synchronizer interface {
	SynchronizePeriod(ctx context.Context) (*PeriodResult, error)
	PeriodReport(ctx context.Context) (*PeriodResult, error)
	SynchronizeDay(ctx context.Context, date time.Time) (*DayResult, error)
	SynchronizeRange(ctx context.Context, from, to time.Time) ([]DayResult, error)
	Efficiency(ctx context.Context, date time.Time) ([]*domain.EfficiencyReport, error)
	RetailStores(ctx context.Context) ([]domain.RetailStore, error)
}

var _ Synchronizer = (*Service)(nil)

type Service struct {
	erp        moysklad.MoySkladIntegrator
	sheets     googlesheets.SheetsIntegrator
	plan       *salesplan.Service
	reconciler *reconciling.Service
	locker     lock.Locker
	runs       repository.SyncRunRepository
}

func New(
	erp moysklad.MoySkladIntegrator,
	sheets googlesheets.SheetsIntegrator,
	plan *salesplan.Service,
	reconciler *reconciling.Service,
	locker lock.Locker,
	runs repository.SyncRunRepository,
) *Service {
	return &Service{
		erp:        erp,
		sheets:     sheets,
		plan:       plan,
		reconciler: reconciler,
		locker:     locker,
		runs:       runs,
	}
}

// SynchronizePeriod concilia o período da planilha em todas as lojas e grava
// a coluna "Продано" em uma única chamada. Qualquer erro aborta sem gravar nada.
func (s *Service) SynchronizePeriod(ctx context.Context) (result *PeriodResult, err error) {
	ctx, correlationID := log.EnsureCorrelationID(ctx)

	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, release)

	run := &domain.SyncRun{Kind: domain.SyncRunKindPeriod, CorrelationID: correlationID}
	s.startRun(ctx, run)
	defer func() { s.finishRun(ctx, run, err) }()

	result, err = s.collectPeriod(ctx)
	if err != nil {
		return nil, err
	}
	run.PeriodStart = &result.Period.StartDate
	run.PeriodEnd = &result.Period.EndDate
	run.Stores = len(result.Snapshots)
	run.TotalSold = sumTotals(result.Totals).String()

	written, err := s.sheets.WriteCells(ctx, result.Updates)
	if err != nil {
		return nil, err
	}
	result.Written = written
	run.CellsUpdated = int(written)

	log.ForContext(ctx).WithFields(log.Fields{
		"period":       result.Period.Label(),
		"sync_updates": len(result.Updates),
		"sync_misses":  len(result.Misses),
	}).Info("Sincronização do período concluída")

	return result, nil
}

// PeriodReport calcula o mesmo resultado de SynchronizePeriod sem gravar na planilha
func (s *Service) PeriodReport(ctx context.Context) (*PeriodResult, error) {
	ctx, _ = log.EnsureCorrelationID(ctx)

	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, release)

	return s.collectPeriod(ctx)
}

// SynchronizeDay monta o relatório do dia por loja; não grava na planilha
func (s *Service) SynchronizeDay(ctx context.Context, date time.Time) (result *DayResult, err error) {
	ctx, correlationID := log.EnsureCorrelationID(ctx)

	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, release)

	day := domain.StartOfDay(date)
	run := &domain.SyncRun{Kind: domain.SyncRunKindDay, CorrelationID: correlationID, PeriodStart: &day, PeriodEnd: &day}
	s.startRun(ctx, run)
	defer func() { s.finishRun(ctx, run, err) }()

	results, err := s.collectDays(ctx, []time.Time{day})
	if err != nil {
		return nil, err
	}
	result = &results[0]

	run.Stores = len(result.Reports)
	run.TotalSold = sumReports(result.Reports).String()

	return result, nil
}

// SynchronizeRange gera um relatório diário para cada dia do intervalo, extremos inclusos
func (s *Service) SynchronizeRange(ctx context.Context, from, to time.Time) ([]DayResult, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidPeriod
	}

	ctx, _ = log.EnsureCorrelationID(ctx)

	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, release)

	return s.collectDays(ctx, domain.DateRange(from, to))
}

// Efficiency calcula a eficiência de todas as lojas no dia
func (s *Service) Efficiency(ctx context.Context, date time.Time) ([]*domain.EfficiencyReport, error) {
	stores, err := s.erp.ListRetailStores(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.EfficiencyReport, 0, len(stores))
	for _, store := range stores {
		report, err := s.reconciler.Efficiency(ctx, store, date)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *Service) RetailStores(ctx context.Context) ([]domain.RetailStore, error) {
	return s.erp.ListRetailStores(ctx)
}

func (s *Service) collectPeriod(ctx context.Context) (*PeriodResult, error) {
	var stores []domain.RetailStore
	var plan *salesplan.Plan

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stores, err = s.erp.ListRetailStores(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		plan, err = s.plan.Load(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("period", plan.Period.Label())
	logger.Infof("Conciliando %d lojas e %d produtos", len(stores), len(plan.Catalog))

	snapshots := make([]*domain.StoreSalesSnapshot, 0, len(stores))
	storesByName := make(map[string]domain.RetailStore, len(stores))
	for _, store := range stores {
		sales, err := s.reconciler.Reconcile(ctx, store, plan.Period.StartDate, plan.Period.EndDate, plan.Catalog)
		if err != nil {
			return nil, err
		}

		snapshot := aggregating.Merge(nil, store.Name, sales)
		snapshot.Address = store.DisplayAddress()
		snapshots = append(snapshots, snapshot)
		storesByName[store.Name] = store
	}

	productNames := domain.ProductNames(plan.Catalog)
	totals := aggregating.TotalAcrossStores(snapshots, productNames)
	updates, misses := reporting.WriteBack(ctx, plan.Table, productNames, totals)

	return &PeriodResult{
		Period:    plan.Period,
		Snapshots: snapshots,
		Totals:    totals,
		Updates:   updates,
		Misses:    misses,
		Products:  productNames,
		Stores:    storesByName,
	}, nil
}

func (s *Service) collectDays(ctx context.Context, dates []time.Time) ([]DayResult, error) {
	var stores []domain.RetailStore
	var catalog []domain.CatalogEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stores, err = s.erp.ListRetailStores(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.plan.LoadCatalog(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]DayResult, 0, len(dates))
	for _, date := range dates {
		result := DayResult{
			Day:     date.Format(domain.PeriodDateLayout),
			Reports: make([]domain.StoreReport, 0, len(stores)),
		}

		for _, store := range stores {
			sales, err := s.reconciler.Reconcile(ctx, store, date, date, catalog)
			if err != nil {
				return nil, err
			}
			result.Reports = append(result.Reports, domain.StoreReport{
				Address: store.DisplayAddress(),
				Sales:   sales,
			})
		}

		results = append(results, result)
	}

	return results, nil
}

func (s *Service) acquire(ctx context.Context) (lock.Release, error) {
	release, err := s.locker.Acquire(ctx, lockKey)
	if errors.Is(err, lock.ErrLocked) {
		return nil, ErrSyncInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao adquirir lock da sincronização: %w", err)
	}
	return release, nil
}

func (s *Service) release(ctx context.Context, release lock.Release) {
	// o ctx do ciclo pode já estar cancelado
	if err := release(context.WithoutCancel(ctx)); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao liberar lock da sincronização")
	}
}

// falhas no registro de execuções nunca interrompem o ciclo
func (s *Service) startRun(ctx context.Context, run *domain.SyncRun) {
	run.Status = domain.SyncRunStatusRunning
	if err := s.runs.Start(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar início da sincronização")
	}
}

func (s *Service) finishRun(ctx context.Context, run *domain.SyncRun, cycleErr error) {
	run.Status = domain.SyncRunStatusSuccess
	if cycleErr != nil {
		run.Status = domain.SyncRunStatusFailed
		message := cycleErr.Error()
		run.ErrorMessage = &message
	}

	if err := s.runs.Finish(context.WithoutCancel(ctx), run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar fim da sincronização")
	}
}

func sumTotals(totals map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, total := range totals {
		sum = sum.Add(total)
	}
	return sum
}

func sumReports(reports []domain.StoreReport) decimal.Decimal {
	sum := decimal.Zero
	for _, report := range reports {
		for _, sales := range report.Sales {
			sum = sum.Add(sales.SalesCount)
		}
	}
	return sum
}
