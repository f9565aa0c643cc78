package utils

import "time"

const QueryDateLayout = "2006-01-02"

// ParseDate lê uma data YYYY-MM-DD em UTC. Texto vazio devolve fallback.
func ParseDate(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	return time.ParseInLocation(QueryDateLayout, dateStr, time.UTC)
}

// TodayUTC devolve a meia-noite UTC do dia corrente
func TodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
