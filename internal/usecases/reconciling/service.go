package reconciling

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
	"github.com/vfg2006/sales-plan-sync/pkg/utils"
)

// limite de páginas por consulta, evita laço infinito se a API repetir o meta
const maxPages = 100

// ErrTooManyPages indica que o relatório não coube no limite de páginas; nada é devolvido
var ErrTooManyPages = errors.New("relatório de giro excede o limite de páginas")

type Service struct {
	erp        moysklad.MoySkladIntegrator
	excluded   Vocabulary
	efficiency Vocabulary
}

func New(cfg *config.Config, erp moysklad.MoySkladIntegrator) *Service {
	return &Service{
		erp:        erp,
		excluded:   NewVocabulary(cfg.Reconcile.ExcludedKeywords),
		efficiency: NewVocabulary(cfg.Reconcile.EfficiencyKeywords),
	}
}

// Reconcile soma as vendas de varejo da loja no intervalo para cada produto do catálogo
func (s *Service) Reconcile(
	ctx context.Context,
	store domain.RetailStore,
	start, end time.Time,
	catalog []domain.CatalogEntry,
) (map[string]*domain.ProductSales, error) {
	lines, err := s.fetchLines(ctx, store, start, end)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"store": store.Name,
		"lines": len(lines),
	})

	matcher := NewMatcher(catalog, s.excluded)
	sales := make(map[string]*domain.ProductSales)
	excluded, unmatched := 0, 0

	for _, line := range lines {
		if matcher.Excluded(line) {
			excluded++
			continue
		}

		entry, ok := matcher.Match(line)
		if !ok {
			unmatched++
			continue
		}

		aggregate, found := sales[entry.ProductName]
		if !found {
			aggregate = domain.NewProductSales(entry.ProductName)
			sales[entry.ProductName] = aggregate
		}
		aggregate.Add(line.AssortmentName, line.Quantity)
	}

	logger.WithFields(log.Fields{
		"matched":   len(sales),
		"excluded":  excluded,
		"unmatched": unmatched,
	}).Debug("Conciliação da loja concluída")

	return sales, nil
}

// Efficiency compara as vendas de produtos alvo com o total vendido no dia
func (s *Service) Efficiency(ctx context.Context, store domain.RetailStore, date time.Time) (*domain.EfficiencyReport, error) {
	lines, err := s.fetchLines(ctx, store, date, date)
	if err != nil {
		return nil, err
	}

	report := &domain.EfficiencyReport{
		Date:             date.Format(domain.PeriodDateLayout),
		RetailStore:      store.DisplayAddress(),
		TotalSales:       decimal.Zero,
		TargetSales:      decimal.Zero,
		Products:         make([]domain.EfficiencyProduct, 0, len(lines)),
		TargetProducts:   make([]domain.EfficiencyProduct, 0),
		ExcludedProducts: make([]domain.EfficiencyProduct, 0),
	}

	for _, line := range lines {
		product := domain.EfficiencyProduct{
			Name:     line.AssortmentName,
			Code:     line.Code,
			Article:  line.Article,
			Quantity: line.Quantity,
			Sum:      line.Sum,
			IsTarget: !s.efficiency.Contains(line.AssortmentName),
		}

		report.Products = append(report.Products, product)
		report.TotalSales = report.TotalSales.Add(line.Quantity)

		if product.IsTarget {
			report.TargetProducts = append(report.TargetProducts, product)
			report.TargetSales = report.TargetSales.Add(line.Quantity)
		} else {
			report.ExcludedProducts = append(report.ExcludedProducts, product)
		}
	}

	report.EfficiencyPercentage = EfficiencyPercentage(report.TargetSales, report.TotalSales)

	log.ForContext(ctx).WithFields(log.Fields{
		"store":      store.Name,
		"efficiency": report.EfficiencyPercentage,
	}).Info("Eficiência de vendas calculada")

	return report, nil
}

// EfficiencyPercentage devolve target/total*100 com duas casas; zero sem vendas
func EfficiencyPercentage(target, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	percentage, _ := target.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return utils.RoundWithTwoDecimalPlace(percentage)
}

func (s *Service) fetchLines(ctx context.Context, store domain.RetailStore, start, end time.Time) ([]domain.TurnoverLine, error) {
	filters := domain.TurnoverFilters{
		MomentFrom:  domain.StartOfDay(start),
		MomentTo:    domain.EndOfDay(end),
		Type:        domain.DocumentTypeRetailDemand,
		RetailStore: store.Href,
		GroupBy:     domain.GroupByProduct,
	}

	period := func(err error) error {
		return errors.Wrapf(err, "loja %s, período %s a %s",
			store.Name,
			start.Format(domain.PeriodDateLayout),
			end.Format(domain.PeriodDateLayout),
		)
	}

	var lines []domain.TurnoverLine
	for page := 0; ; page++ {
		if page == maxPages {
			log.ForContext(ctx).WithFields(log.Fields{
				"store":  store.Name,
				"offset": filters.Offset,
			}).Error("Limite de páginas atingido no relatório de giro")
			return nil, period(ErrTooManyPages)
		}

		result, err := s.erp.FetchTurnover(ctx, filters)
		if err != nil {
			return nil, period(err)
		}

		lines = append(lines, result.Lines...)

		fetched := filters.Offset + result.Pagination.Limit
		if result.Pagination.Limit == 0 || fetched >= result.Pagination.Size {
			break
		}
		filters.Offset = fetched
	}

	return lines, nil
}
