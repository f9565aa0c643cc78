package reporting

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/sheettable"
	"github.com/xuri/excelize/v2"
)

func productSales(name string, lines map[string]int64) *domain.ProductSales {
	sales := domain.NewProductSales(name)
	for line, quantity := range lines {
		sales.Add(line, decimal.NewFromInt(quantity))
	}
	return sales
}

func salesPlanTable(t *testing.T) *sheettable.Table {
	grid := sheettable.NewGrid([][]any{
		{"Начало периода", "01.03.2025"},
		{"Категория", "Товар", "План", "Продано", "Осталось до плана", "Выполнено в %", "Необходимая средневная продажа"},
		{"Устройства", "Pod X", 10, 0, 10, 0, 1},
		{"Жидкости", "Husky", 20, 3, 17, 15, 2},
	})

	table, err := sheettable.ExtractTable(grid, domain.SalesPlanColumns())
	require.NoError(t, err)
	return table
}

func TestWriteBack(t *testing.T) {
	table := salesPlanTable(t)

	updates, misses := WriteBack(context.Background(), table,
		[]string{"Pod X", "Husky", "Chaser"},
		map[string]decimal.Decimal{
			"Pod X": decimal.NewFromInt(5),
			"Husky": decimal.RequireFromString("2.5"),
		},
	)

	require.Len(t, updates, 2)
	assert.Equal(t, domain.CellUpdate{Column: "D", Row: 3, ProductName: "Pod X", Value: int64(5)}, updates[0])
	assert.Equal(t, "D3", updates[0].A1())
	assert.Equal(t, "D4", updates[1].A1())
	assert.Equal(t, 2.5, updates[1].Value)
	assert.Equal(t, []string{"Chaser"}, misses)
}

func TestWriteBack_MissingTotalIsZero(t *testing.T) {
	table := salesPlanTable(t)

	updates, misses := WriteBack(context.Background(), table, []string{"Husky"}, map[string]decimal.Decimal{})

	require.Len(t, updates, 1)
	assert.Equal(t, int64(0), updates[0].Value)
	assert.Empty(t, misses)
}

func TestSalesTableMessage(t *testing.T) {
	reports := []domain.StoreReport{
		{
			Address: "Вилы Липатова 23",
			Sales: map[string]*domain.ProductSales{
				"Pod X": productSales("Pod X", map[string]int64{"Pod X Black": 3}),
				"Husky": productSales("Husky", map[string]int64{"Husky Mint": 0}),
			},
		},
		{
			Address: "Вилы Липатова 24",
			Sales: map[string]*domain.ProductSales{
				"Pod X": productSales("Pod X", map[string]int64{"Pod X White": 2}),
			},
		},
	}

	message := SalesTableMessage(reports, "15.03.2025")

	expected := "📊 **ОТЧЕТ ПО ПРОДАЖАМ**\n" +
		"📅 15.03.2025\n\n" +
		"**ТОВАРЫ ПО АДРЕСАМ:**\n\n" +
		"**Pod X:**\n" +
		"  • Вилы Липатова 23: **3** шт.\n" +
		"  • Вилы Липатова 24: **2** шт.\n" +
		"\n"

	assert.Equal(t, expected, message)
}

func TestSalesTableMessage_Empty(t *testing.T) {
	message := SalesTableMessage(nil, "15.03.2025")
	assert.Equal(t, "📊 **ОТЧЕТ ПО ПРОДАЖАМ**\n📅 15.03.2025\n\n**ТОВАРЫ ПО АДРЕСАМ:**\n\n", message)
}

func TestStoreReportMessage(t *testing.T) {
	tests := []struct {
		name     string
		lines    map[string]decimal.Decimal
		expected string
	}{
		{
			name: "Linhas ordenadas por nome",
			lines: map[string]decimal.Decimal{
				"Pod X White": decimal.NewFromInt(1),
				"Husky Mint":  decimal.NewFromInt(2),
			},
			expected: "**Вилы Липатова 23**\n📅 15.03.2025\n\n" +
				"• Husky Mint: **2** шт.\n" +
				"• Pod X White: **1** шт.\n",
		},
		{
			name:     "Sem vendas",
			lines:    map[string]decimal.Decimal{},
			expected: "**Вилы Липатова 23**\n📅 15.03.2025\n\n❌ За указанный период продаж не было\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StoreReportMessage("Вилы Липатова 23", tt.lines, "15.03.2025"))
		})
	}
}

func TestStoreLines(t *testing.T) {
	report := domain.StoreReport{
		Sales: map[string]*domain.ProductSales{
			"Pod":   productSales("Pod", map[string]int64{"Pod X Black": 2}),
			"Husky": productSales("Husky", map[string]int64{"Husky Mint": 1}),
		},
	}

	lines := StoreLines(report)
	assert.True(t, decimal.NewFromInt(2).Equal(lines["Pod X Black"]))
	assert.True(t, decimal.NewFromInt(1).Equal(lines["Husky Mint"]))
}

func TestEfficiencyMessage(t *testing.T) {
	reports := []*domain.EfficiencyReport{{
		RetailStore:          "Вилы Липатова 23",
		TotalSales:           decimal.NewFromInt(3),
		TargetSales:          decimal.NewFromInt(2),
		EfficiencyPercentage: 66.67,
	}}

	expected := "🎯 **ЭФФЕКТИВНОСТЬ ПРОДАЖ**\n📅 15.03.2025\n\n" +
		"**Вилы Липатова 23**\n" +
		"  • Целевые: **2** из **3** шт.\n" +
		"  • Эффективность: **66.67%**\n\n"

	assert.Equal(t, expected, EfficiencyMessage(reports, "15.03.2025"))
}

func TestExportXLSX(t *testing.T) {
	storeA := &domain.StoreSalesSnapshot{
		StoreName: "Loja A",
		Address:   "Вилы Липатова 23",
		Products: map[string]*domain.ProductSales{
			"Pod X": productSales("Pod X", map[string]int64{"Pod X Black": 3}),
		},
	}
	storeB := &domain.StoreSalesSnapshot{
		StoreName: "Loja B",
		Address:   "Вилы Липатова 24",
		Products: map[string]*domain.ProductSales{
			"Pod X": productSales("Pod X", map[string]int64{"Pod X White": 2}),
			"Husky": productSales("Husky", map[string]int64{"Husky Mint": 1}),
		},
	}

	data, err := ExportXLSX([]*domain.StoreSalesSnapshot{storeB, storeA}, []string{"Pod X", "Husky"}, "01.03.2025 - 31.03.2025")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, []string{"Период", "01.03.2025 - 31.03.2025"}, rows[0])
	assert.Equal(t, []string{"Товар", "Вилы Липатова 23", "Вилы Липатова 24", "Итого"}, rows[2])
	assert.Equal(t, []string{"Pod X", "3", "2", "5"}, rows[3])
	assert.Equal(t, []string{"Husky", "0", "1", "1"}, rows[4])
	assert.Equal(t, []string{"Итого", "", "", "6"}, rows[5])
}
