// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sync_run.go -destination=mocks/sync_run.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-plan-sync/infrastructure/database/postgres"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/pkg/utils"
)

const syncRunTable = "sync_runs"

var syncRunColumns = []string{
	"id",
	"kind",
	"status",
	"period_start",
	"period_end",
	"stores",
	"cells_updated",
	"total_sold",
	"error_message",
	"started_at",
	"finished_at",
	"correlation_id",
}

type SyncRunRepository interface {
	Start(ctx context.Context, run *domain.SyncRun) error
	Finish(ctx context.Context, run *domain.SyncRun) error
	ListRecent(ctx context.Context, limit uint64) ([]domain.SyncRun, error)
}

type syncRunRepository struct {
	conn postgres.Queryer
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn.DB,
	}
}

// Start grava o início do ciclo e preenche o ID gerado
func (r *syncRunRepository) Start(ctx context.Context, run *domain.SyncRun) error {
	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da execução: %w", err)
		}
		run.ID = id
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	query, args, err := buildInsertSyncRun(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir execução %s: %w", run.ID, err)
	}

	return nil
}

func (r *syncRunRepository) Finish(ctx context.Context, run *domain.SyncRun) error {
	if run.FinishedAt == nil {
		now := time.Now().UTC()
		run.FinishedAt = &now
	}

	query, args, err := buildFinishSyncRun(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao finalizar execução %s: %w", run.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("execução %s não encontrada", run.ID)
	}

	return nil
}

func (r *syncRunRepository) ListRecent(ctx context.Context, limit uint64) ([]domain.SyncRun, error) {
	query, args, err := squirrel.
		Select(syncRunColumns...).
		From(syncRunTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.SyncRun, 0)
	for rows.Next() {
		run, err := scanSyncRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func buildInsertSyncRun(run *domain.SyncRun) (string, []any, error) {
	return squirrel.
		Insert(syncRunTable).
		Columns(syncRunColumns...).
		Values(
			run.ID,
			run.Kind,
			run.Status,
			run.PeriodStart,
			run.PeriodEnd,
			run.Stores,
			run.CellsUpdated,
			run.TotalSold,
			run.ErrorMessage,
			run.StartedAt,
			run.FinishedAt,
			run.CorrelationID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildFinishSyncRun(run *domain.SyncRun) (string, []any, error) {
	return squirrel.
		Update(syncRunTable).
		Set("status", run.Status).
		Set("stores", run.Stores).
		Set("cells_updated", run.CellsUpdated).
		Set("total_sold", run.TotalSold).
		Set("error_message", run.ErrorMessage).
		Set("finished_at", run.FinishedAt).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanSyncRun(rows *sql.Rows) (*domain.SyncRun, error) {
	var (
		run          domain.SyncRun
		periodStart  sql.NullTime
		periodEnd    sql.NullTime
		errorMessage sql.NullString
		finishedAt   sql.NullTime
	)

	err := rows.Scan(
		&run.ID,
		&run.Kind,
		&run.Status,
		&periodStart,
		&periodEnd,
		&run.Stores,
		&run.CellsUpdated,
		&run.TotalSold,
		&errorMessage,
		&run.StartedAt,
		&finishedAt,
		&run.CorrelationID,
	)
	if err != nil {
		return nil, err
	}

	if periodStart.Valid {
		run.PeriodStart = &periodStart.Time
	}
	if periodEnd.Valid {
		run.PeriodEnd = &periodEnd.Time
	}
	if errorMessage.Valid {
		run.ErrorMessage = &errorMessage.String
	}
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return &run, nil
}

// NoopSyncRunRepository é usado quando o banco está desabilitado
type NoopSyncRunRepository struct{}

func (NoopSyncRunRepository) Start(_ context.Context, run *domain.SyncRun) error {
	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		run.ID = id
	}
	return nil
}

func (NoopSyncRunRepository) Finish(context.Context, *domain.SyncRun) error { return nil }

func (NoopSyncRunRepository) ListRecent(context.Context, uint64) ([]domain.SyncRun, error) {
	return []domain.SyncRun{}, nil
}
