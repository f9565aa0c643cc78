package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reporting"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	"github.com/vfg2006/sales-plan-sync/pkg/apiErrors"
	"github.com/vfg2006/sales-plan-sync/pkg/utils"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxRangeDays    = 31
)

type DayReportResponse struct {
	*synchronizing.DayResult
	Message string `json:"message"`
}

type EfficiencyResponse struct {
	Date    string                     `json:"date"`
	Reports []*domain.EfficiencyReport `json:"reports"`
	Message string                     `json:"message"`
}

func queryDate(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	date, err := utils.ParseDate(r.URL.Query().Get(name), utils.TodayUTC())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("%s deve estar no formato YYYY-MM-DD", name), nil)
		return time.Time{}, false
	}
	return date, true
}

// GetDayReport devolve o relatório do dia e o texto enviado ao Telegram
func GetDayReport(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := queryDate(w, r, "date")
		if !ok {
			return
		}

		result, err := service.SynchronizeDay(r.Context(), date)
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, DayReportResponse{
			DayResult: result,
			Message:   reporting.SalesTableMessage(result.Reports, result.Day),
		})
	}
}

// GetRangeReport devolve um relatório por dia entre start_date e end_date
func GetRangeReport(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, ok := queryDate(w, r, "start_date")
		if !ok {
			return
		}
		to, ok := queryDate(w, r, "end_date")
		if !ok {
			return
		}

		if days := len(domain.DateRange(from, to)); days > maxRangeDays {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("intervalo máximo de %d dias", maxRangeDays), nil)
			return
		}

		results, err := service.SynchronizeRange(r.Context(), from, to)
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func GetEfficiencyReport(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := queryDate(w, r, "date")
		if !ok {
			return
		}

		reports, err := service.Efficiency(r.Context(), date)
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		label := date.Format(domain.PeriodDateLayout)
		writeJSON(w, http.StatusOK, EfficiencyResponse{
			Date:    label,
			Reports: reports,
			Message: reporting.EfficiencyMessage(reports, label),
		})
	}
}

// ExportPeriodReport gera a planilha xlsx do período sem gravar no Google Sheets
func ExportPeriodReport(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.PeriodReport(r.Context())
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		data, err := reporting.ExportXLSX(result.Snapshots, result.Products, result.Period.Label())
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reporting.ExportFilename(result.Period)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func ListRetailStores(service synchronizing.Synchronizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.RetailStores(r.Context())
		if err != nil {
			writeSyncError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, stores)
	}
}
