package moyskladclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

const (
	turnoverPath = "api/remap/1.2/report/turnover/all"
	MomentLayout = "2006-01-02 15:04:05"

	DefaultLimit = 1000
	MaxLimit     = 1000

	acceptTimezoneHeader  = "X-Lognex-Accept-Timezone"
	contentTimezoneHeader = "X-Lognex-Content-Timezone"
)

// BuildTurnoverQuery monta os parâmetros do relatório "Обороты".
// Filtros opcionais vazios não são enviados.
func BuildTurnoverQuery(filters domain.TurnoverFilters) url.Values {
	query := url.Values{}

	if !filters.MomentFrom.IsZero() {
		query.Set("momentFrom", filters.MomentFrom.Format(MomentLayout))
	}
	if !filters.MomentTo.IsZero() {
		query.Set("momentTo", filters.MomentTo.Format(MomentLayout))
	}

	var clauses []string
	if filters.Type != "" {
		clauses = append(clauses, "type="+string(filters.Type))
	}
	if filters.RetailStore != "" {
		clauses = append(clauses, "retailStore="+filters.RetailStore)
	}
	if filters.Store != "" {
		clauses = append(clauses, "store="+filters.Store)
	}
	if len(clauses) > 0 {
		query.Set("filter", strings.Join(clauses, ";"))
	}

	query.Set("limit", strconv.Itoa(clampLimit(filters.Limit)))

	if filters.Offset > 0 {
		query.Set("offset", strconv.Itoa(filters.Offset))
	}

	groupBy := filters.GroupBy
	if groupBy == "" {
		groupBy = domain.GroupByProduct
	}
	query.Set("groupBy", string(groupBy))

	return query
}

func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLimit
	case limit < 1:
		return 1
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// GetTurnover busca uma única página do relatório; não pagina automaticamente
func (c *MoySkladClient) GetTurnover(ctx context.Context, filters domain.TurnoverFilters) (*moyskladdomain.TurnoverReport, error) {
	spec := RequestSpec{
		Method: http.MethodGet,
		Path:   turnoverPath,
		Query:  BuildTurnoverQuery(filters),
	}

	if filters.AcceptTimezone != "" {
		spec.Headers = http.Header{}
		spec.Headers.Set(acceptTimezoneHeader, filters.AcceptTimezone)
	}

	var report moyskladdomain.TurnoverReport
	resp, err := c.requester.Decode(ctx, spec, &report)
	if err != nil {
		return nil, err
	}

	report.ContentTimezone = resp.Header.Get(contentTimezoneHeader)

	logger := logrus.WithField("rows", len(report.Rows))
	if report.ContentTimezone != "" {
		logger = logger.WithField("timezone", report.ContentTimezone)
	}
	logger.Info("moysklad: relatório de giro obtido")

	return &report, nil
}
