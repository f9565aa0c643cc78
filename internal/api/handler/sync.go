package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/infrastructure/repository"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/apiErrors"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

type SyncPeriodResponse struct {
	Period  string                     `json:"period"`
	Stores  []StoreTotals              `json:"stores"`
	Totals  map[string]decimal.Decimal `json:"totals"`
	Updates []domain.CellUpdate        `json:"updates"`
	Misses  []string                   `json:"misses"`
	Written int64                      `json:"written"`
}

type StoreTotals struct {
	Store string                     `json:"store"`
	Total decimal.Decimal            `json:"total"`
	Sales map[string]decimal.Decimal `json:"sales"`
}

// SyncPeriod executa a sincronização do período de forma síncrona
func SyncPeriod(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithField("trigger", "http").Info("Sincronização do período solicitada")

		result, err := service.SynchronizePeriod(r.Context())
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, NewSyncPeriodResponse(result))
	}
}

func NewSyncPeriodResponse(result *synchronizing.PeriodResult) SyncPeriodResponse {
	stores := make([]StoreTotals, 0, len(result.Snapshots))
	for _, snapshot := range result.Snapshots {
		sales := make(map[string]decimal.Decimal, len(snapshot.Products))
		for name, product := range snapshot.Products {
			sales[name] = product.SalesCount
		}
		stores = append(stores, StoreTotals{
			Store: snapshot.StoreName,
			Total: snapshot.TotalSalesCount,
			Sales: sales,
		})
	}

	return SyncPeriodResponse{
		Period:  result.Period.Label(),
		Stores:  stores,
		Totals:  result.Totals,
		Updates: result.Updates,
		Misses:  result.Misses,
		Written: result.Written,
	}
}

// ListSyncRuns devolve as últimas execuções registradas
func ListSyncRuns(runs repository.SyncRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultRunsLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxRunsLimit)
		}

		list, err := runs.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}
