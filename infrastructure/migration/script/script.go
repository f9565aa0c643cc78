package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-plan-sync/internal/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS sync_runs (
		id             VARCHAR(16) PRIMARY KEY,
		kind           VARCHAR(16) NOT NULL,
		status         VARCHAR(16) NOT NULL,
		period_start   TIMESTAMPTZ NULL,
		period_end     TIMESTAMPTZ NULL,
		stores         INTEGER     NOT NULL DEFAULT 0,
		cells_updated  INTEGER     NOT NULL DEFAULT 0,
		total_sold     TEXT        NOT NULL DEFAULT '0',
		error_message  TEXT        NULL,
		started_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		finished_at    TIMESTAMPTZ NULL,
		correlation_id VARCHAR(64) NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs (started_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_runs_kind_status ON sync_runs (kind, status)`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Erro ao carregar configuração: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.Fatalf("ERRO ao abrir conexão: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logrus.Fatalf("ERRO ao conectar no banco: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	startTime := time.Now()
	for i, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			logrus.Fatalf("ERRO ao executar statement %d/%d: %v", i+1, len(statements), err)
		}
		logrus.Infof("Statement %d/%d executado", i+1, len(statements))
	}

	if err := tx.Commit(); err != nil {
		logrus.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
