package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/sheettable"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/apiErrors"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeSyncError traduz os erros dos ciclos de sincronização para a API
func writeSyncError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		headersErr *sheettable.HeadersNotFoundError
		periodErr  *sheettable.PeriodNotFoundError
		dateErr    *sheettable.PeriodDateError
		erpErr     *moyskladdomain.APIError
	)

	switch {
	case errors.Is(err, synchronizing.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.As(err, &headersErr):
		apiErrors.WriteError(w, apiErrors.ErrSheetLayout, err.Error(), map[string]any{"missing": headersErr.Missing})
	case errors.As(err, &periodErr):
		apiErrors.WriteError(w, apiErrors.ErrSheetLayout, err.Error(), map[string]any{"missing": periodErr.Missing})
	case errors.As(err, &dateErr):
		apiErrors.WriteError(w, apiErrors.ErrSheetLayout, err.Error(), nil)
	case errors.As(err, &erpErr):
		log.ForContext(r.Context()).WithError(err).Error("Erro na API do MoySklad")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), map[string]any{"status_code": erpErr.StatusCode})
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro na sincronização")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
