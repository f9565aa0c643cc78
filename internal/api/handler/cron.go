package handler

import (
	"net/http"

	"github.com/vfg2006/sales-plan-sync/pkg/apiErrors"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

// CronJob é o agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunCronJob dispara os relatórios automáticos em segundo plano
func RunCronJob(job CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithField("trigger", "http").Info("Execução manual da cron solicitada")

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Relatórios já estão em execução", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{
			"message": "Execução iniciada em segundo plano",
		})
	}
}

func GetCronStatus(job CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, job.GetStatus())
	}
}
