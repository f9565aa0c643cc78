package domain

import "time"

type SyncRunKind string

const (
	SyncRunKindPeriod SyncRunKind = "period"
	SyncRunKindDay    SyncRunKind = "day"
)

type SyncRunStatus string

const (
	SyncRunStatusRunning SyncRunStatus = "running"
	SyncRunStatusSuccess SyncRunStatus = "success"
	SyncRunStatusFailed  SyncRunStatus = "failed"
)

// SyncRun registra a execução de um ciclo de sincronização
type SyncRun struct {
	ID            string        `json:"id"`
	Kind          SyncRunKind   `json:"kind"`
	Status        SyncRunStatus `json:"status"`
	PeriodStart   *time.Time    `json:"period_start,omitempty"`
	PeriodEnd     *time.Time    `json:"period_end,omitempty"`
	Stores        int           `json:"stores"`
	CellsUpdated  int           `json:"cells_updated"`
	TotalSold     string        `json:"total_sold"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	FinishedAt    *time.Time    `json:"finished_at,omitempty"`
	CorrelationID string        `json:"correlation_id,omitempty"`
}
