package domain

import (
	"errors"
	"time"
)

const PeriodDateLayout = "02.01.2006"

var ErrInvalidPeriod = errors.New("período inválido: data final anterior à inicial")

type SalesPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (p SalesPeriod) Validate() error {
	if p.EndDate.Before(p.StartDate) {
		return ErrInvalidPeriod
	}
	return nil
}

// Label formata o período como "01.03.2025 - 31.03.2025"
func (p SalesPeriod) Label() string {
	return p.StartDate.Format(PeriodDateLayout) + " - " + p.EndDate.Format(PeriodDateLayout)
}

// StartOfDay devolve 00:00:00 do dia informado
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay devolve 23:59:59 do dia informado
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// DateRange cria uma slice com um dia por posição, com os dois extremos inclusos
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	current := StartOfDay(start)
	last := StartOfDay(end)

	for !current.After(last) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}

	return dates
}
