package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	moyskladmocks "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/mocks"
	"github.com/vfg2006/sales-plan-sync/internal/config"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Reconcile: config.Reconcile{
			ExcludedKeywords:   []string{"аккумулятор", "испаритель", "катридж", "battery"},
			EfficiencyKeywords: []string{"картридж", "испаритель", "фильтр", "расходник", "cartridge", "coil", "filter", "consumable"},
		},
	}
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockERP := moyskladmocks.NewMockMoySkladIntegrator(ctrl)
	service := New(testConfig(), mockERP)

	store := domain.RetailStore{Name: "Вилы Липатова 23", Href: "https://api.moysklad.ru/api/remap/1.2/entity/retailstore/1"}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	catalog := []domain.CatalogEntry{{ProductName: "Pod X"}, {ProductName: "Husky", Category: "Жидкости"}}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result map[string]*domain.ProductSales, err error)
	}{
		{
			name: "Soma linhas por produto e descarta consumíveis",
			setup: func() {
				mockERP.EXPECT().
					FetchTurnover(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error) {
						assert.Equal(t, domain.DocumentTypeRetailDemand, filters.Type)
						assert.Equal(t, domain.GroupByProduct, filters.GroupBy)
						assert.Equal(t, store.Href, filters.RetailStore)
						assert.Equal(t, "2025-03-01 00:00:00", filters.MomentFrom.Format("2006-01-02 15:04:05"))
						assert.Equal(t, "2025-03-31 23:59:59", filters.MomentTo.Format("2006-01-02 15:04:05"))
						return &domain.TurnoverPage{Lines: []domain.TurnoverLine{
							line("Pod X Black", "", 2),
							line("Pod X White", "", 1),
							line("Pod X Black", "", 1),
							line("Pod X Испаритель", "", 5),
							line("Husky Mint", "Жидкости", 4),
							line("Husky Mint", "Устройства", 7),
						}}, nil
					})
			},
			validate: func(t *testing.T, result map[string]*domain.ProductSales, err error) {
				require.NoError(t, err)
				require.Len(t, result, 2)

				podX := result["Pod X"]
				assert.True(t, decimal.NewFromInt(4).Equal(podX.SalesCount))
				assert.True(t, decimal.NewFromInt(3).Equal(podX.ContributingLines["Pod X Black"]))
				assert.True(t, decimal.NewFromInt(1).Equal(podX.ContributingLines["Pod X White"]))
				assert.NotContains(t, podX.ContributingLines, "Pod X Испаритель")

				assert.True(t, decimal.NewFromInt(4).Equal(result["Husky"].SalesCount))
			},
		},
		{
			name: "Percorre todas as páginas do relatório",
			setup: func() {
				first := mockERP.EXPECT().
					FetchTurnover(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error) {
						assert.Zero(t, filters.Offset)
						return &domain.TurnoverPage{
							Lines:      []domain.TurnoverLine{line("Pod X", "", 1)},
							Pagination: domain.Pagination{Size: 2, Limit: 1},
						}, nil
					})
				mockERP.EXPECT().
					FetchTurnover(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error) {
						assert.Equal(t, 1, filters.Offset)
						return &domain.TurnoverPage{
							Lines:      []domain.TurnoverLine{line("Pod X", "", 2)},
							Pagination: domain.Pagination{Size: 2, Limit: 1, Offset: 1},
						}, nil
					}).
					After(first)
			},
			validate: func(t *testing.T, result map[string]*domain.ProductSales, err error) {
				require.NoError(t, err)
				assert.True(t, decimal.NewFromInt(3).Equal(result["Pod X"].SalesCount))
			},
		},
		{
			name: "Relatório maior que o limite de páginas falha sem devolver parcial",
			setup: func() {
				mockERP.EXPECT().
					FetchTurnover(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters domain.TurnoverFilters) (*domain.TurnoverPage, error) {
						return &domain.TurnoverPage{
							Lines:      []domain.TurnoverLine{line("Pod X", "", 1)},
							Pagination: domain.Pagination{Size: 200000, Limit: 1000, Offset: filters.Offset},
						}, nil
					}).
					Times(maxPages)
			},
			validate: func(t *testing.T, result map[string]*domain.ProductSales, err error) {
				assert.ErrorIs(t, err, ErrTooManyPages)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "Вилы Липатова 23")
				assert.Contains(t, err.Error(), "31.03.2025")
			},
		},
		{
			name: "Erro do ERP carrega loja e período",
			setup: func() {
				mockERP.EXPECT().
					FetchTurnover(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("status 500"))
			},
			validate: func(t *testing.T, result map[string]*domain.ProductSales, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "Вилы Липатова 23")
				assert.Contains(t, err.Error(), "01.03.2025")
				assert.Contains(t, err.Error(), "status 500")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := service.Reconcile(context.Background(), store, start, end, catalog)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Efficiency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockERP := moyskladmocks.NewMockMoySkladIntegrator(ctrl)
	service := New(testConfig(), mockERP)

	store := domain.RetailStore{Name: "Вилы Липатова 24", Href: "href-24"}
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Calcula percentual de produtos alvo", func(t *testing.T) {
		mockERP.EXPECT().
			FetchTurnover(gomock.Any(), gomock.Any()).
			Return(&domain.TurnoverPage{Lines: []domain.TurnoverLine{
				line("Жидкость Husky", "", 2),
				line("Картридж Xros", "", 1),
			}}, nil)

		report, err := service.Efficiency(context.Background(), store, date)
		require.NoError(t, err)

		assert.Equal(t, "15.03.2025", report.Date)
		assert.Equal(t, "Вилы Липатова 24", report.RetailStore)
		assert.True(t, decimal.NewFromInt(3).Equal(report.TotalSales))
		assert.True(t, decimal.NewFromInt(2).Equal(report.TargetSales))
		assert.Equal(t, 66.67, report.EfficiencyPercentage)
		assert.Len(t, report.TargetProducts, 1)
		assert.Len(t, report.ExcludedProducts, 1)
	})

	t.Run("Sem vendas a eficiência é zero", func(t *testing.T) {
		mockERP.EXPECT().
			FetchTurnover(gomock.Any(), gomock.Any()).
			Return(&domain.TurnoverPage{}, nil)

		report, err := service.Efficiency(context.Background(), store, date)
		require.NoError(t, err)
		assert.Zero(t, report.EfficiencyPercentage)
		assert.Empty(t, report.Products)
	})
}

func TestEfficiencyPercentage(t *testing.T) {
	assert.Equal(t, 0.0, EfficiencyPercentage(decimal.Zero, decimal.Zero))
	assert.Equal(t, 100.0, EfficiencyPercentage(decimal.NewFromInt(4), decimal.NewFromInt(4)))
	assert.Equal(t, 33.33, EfficiencyPercentage(decimal.NewFromInt(1), decimal.NewFromInt(3)))
}
