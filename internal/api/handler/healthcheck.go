package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/pkg/apiErrors"
)

// HealthCheck verifica uma dependência opcional (banco, redis)
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthcheckHandler(checks ...HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := map[string]string{}
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", check.Name).Warn("healthcheck falhou")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, check.Name+" indisponível", nil)
				return
			}
			status[check.Name] = "ok"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":       "ok",
			"time":         time.Now().UTC(),
			"dependencies": status,
		})
	})
}
