package sheettable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPeriod(t *testing.T) {
	march1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	march31 := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		grid     Grid
		validate func(t *testing.T, start, end time.Time, err error)
	}{
		{
			name: "marcadores em posições arbitrárias",
			grid: TextGrid([][]string{
				{"", "", "", "End", "31.03.2025"},
				{"План"},
				{"x", "Start", "01.03.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.True(t, march1.Equal(start))
				assert.True(t, march31.Equal(end))
				assert.Equal(t, time.UTC, start.Location())
			},
		},
		{
			name: "mesma linha",
			grid: TextGrid([][]string{
				{"Start", "01.03.2025", "End", "31.03.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.True(t, march1.Equal(start))
				assert.True(t, march31.Equal(end))
			},
		},
		{
			name: "primeira ocorrência vence",
			grid: TextGrid([][]string{
				{"Start", "01.03.2025", "End", "31.03.2025"},
				{"Start", "01.04.2025", "End", "zzz"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.True(t, march1.Equal(start))
			},
		},
		{
			name: "data antes do marcador falha",
			grid: TextGrid([][]string{
				{"01.03.2025", "Start"},
				{"31.03.2025", "End"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				var dateErr *PeriodDateError
				require.ErrorAs(t, err, &dateErr)
				assert.Equal(t, "Start", dateErr.Marker)
				assert.Empty(t, dateErr.Value)
			},
		},
		{
			name: "célula ao lado do marcador vazia falha mesmo com outra ocorrência válida",
			grid: TextGrid([][]string{
				{"Start", ""},
				{"x", "Start", "01.04.2025", "End", "30.04.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				var dateErr *PeriodDateError
				require.ErrorAs(t, err, &dateErr)
				assert.Equal(t, "Start", dateErr.Marker)
				assert.True(t, start.IsZero())
			},
		},
		{
			name: "marcador ausente falha",
			grid: TextGrid([][]string{
				{"Start", "01.03.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				var notFound *PeriodNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, []string{"End"}, notFound.Missing)
			},
		},
		{
			name: "data mal formatada falha",
			grid: TextGrid([][]string{
				{"Start", "2025-03-01"},
				{"End", "31.03.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				var dateErr *PeriodDateError
				require.ErrorAs(t, err, &dateErr)
				assert.Equal(t, "Start", dateErr.Marker)
				assert.Equal(t, "2025-03-01", dateErr.Value)
			},
		},
		{
			name: "data inexistente falha",
			grid: TextGrid([][]string{
				{"Start", "31.02.2025"},
				{"End", "31.03.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				var dateErr *PeriodDateError
				require.ErrorAs(t, err, &dateErr)
			},
		},
		{
			name: "dia e mês sem zero à esquerda",
			grid: TextGrid([][]string{
				{"Start", "1.3.2025", "End", "31.3.2025"},
			}),
			validate: func(t *testing.T, start, end time.Time, err error) {
				require.NoError(t, err)
				assert.True(t, march1.Equal(start))
				assert.True(t, march31.Equal(end))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ExtractPeriod(tt.grid, "Start", "End")
			tt.validate(t, period.StartDate, period.EndDate, err)
		})
	}
}
