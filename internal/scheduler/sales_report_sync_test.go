package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telegrammocks "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/telegram/mocks"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing"
	syncmocks "github.com/vfg2006/sales-plan-sync/internal/usecases/synchronizing/mocks"
	"go.uber.org/mock/gomock"
)

const reportChat int64 = -1001

func newTestService(ctrl *gomock.Controller) (*SalesReportSyncService, *syncmocks.MockSynchronizer, *telegrammocks.MockTelegramIntegrator) {
	mockSync := syncmocks.NewMockSynchronizer(ctrl)
	mockTelegram := telegrammocks.NewMockTelegramIntegrator(ctrl)

	service := &SalesReportSyncService{
		synchronizer: mockSync,
		telegram:     mockTelegram,
		config:       SalesReportSyncConfig{ReportChatID: reportChat},
		now: func() time.Time {
			return time.Date(2025, 3, 14, 13, 15, 0, 0, time.UTC)
		},
	}
	return service, mockSync, mockTelegram
}

func TestSalesReportSyncService_RunReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSync, mockTelegram := newTestService(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Período, relatório do dia e notificações na ordem",
			setup: func() {
				sales := domain.NewProductSales("Pod X")
				sales.Add("Pod X Black", decimal.NewFromInt(3))

				gomock.InOrder(
					mockTelegram.EXPECT().Notify(gomock.Any(), reportChat, "🚀 Запущены автоматические отчеты").Return(nil),
					mockSync.EXPECT().SynchronizePeriod(gomock.Any()).Return(&synchronizing.PeriodResult{}, nil),
					mockSync.EXPECT().
						SynchronizeDay(gomock.Any(), time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)).
						Return(&synchronizing.DayResult{
							Day:     "14.03.2025",
							Reports: []domain.StoreReport{{Address: "Вилы Липатова 23", Sales: map[string]*domain.ProductSales{"Pod X": sales}}},
						}, nil),
					mockTelegram.EXPECT().
						NotifyMarkdown(gomock.Any(), reportChat, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ int64, text string) error {
							assert.True(t, strings.HasPrefix(text, "📊 **ОТЧЕТ ПО ПРОДАЖАМ**"))
							assert.Contains(t, text, "📅 14.03.2025")
							assert.Contains(t, text, "Pod X")
							return nil
						}),
					mockTelegram.EXPECT().Notify(gomock.Any(), reportChat, "✅ Автоматические отчеты успешно выполнены").Return(nil),
				)
			},
			validate: func(t *testing.T, err error) {
				require.NoError(t, err)
				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "", status["last_sync_error"])
			},
		},
		{
			name: "Falha no período notifica o erro e não gera o relatório do dia",
			setup: func() {
				mockTelegram.EXPECT().Notify(gomock.Any(), reportChat, "🚀 Запущены автоматические отчеты").Return(nil)
				mockSync.EXPECT().SynchronizePeriod(gomock.Any()).Return(nil, errors.New("planilha indisponível"))
				mockSync.EXPECT().SynchronizeDay(gomock.Any(), gomock.Any()).Times(0)
				mockTelegram.EXPECT().
					Notify(gomock.Any(), reportChat, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, text string) error {
						assert.True(t, strings.HasPrefix(text, "❌"))
						assert.Contains(t, text, "planilha indisponível")
						return nil
					})
			},
			validate: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, service.GetStatus()["last_sync_error"], "planilha indisponível")
			},
		},
		{
			name: "Falha de notificação não interrompe o ciclo",
			setup: func() {
				mockTelegram.EXPECT().Notify(gomock.Any(), reportChat, gomock.Any()).Return(errors.New("telegram fora")).Times(2)
				mockSync.EXPECT().SynchronizePeriod(gomock.Any()).Return(&synchronizing.PeriodResult{}, nil)
				mockSync.EXPECT().SynchronizeDay(gomock.Any(), gomock.Any()).Return(&synchronizing.DayResult{Day: "14.03.2025"}, nil)
				mockTelegram.EXPECT().NotifyMarkdown(gomock.Any(), reportChat, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			err := service.RunReports(context.Background())
			tt.validate(t, err)
		})
	}
}

func TestSalesReportSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)
	service.syncRunning = true

	// nenhum mock é chamado
	assert.NoError(t, service.RunReports(context.Background()))
	assert.False(t, service.TriggerManualSync())
}

func TestSalesReportSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSync, mockTelegram := newTestService(ctrl)

	var wg sync.WaitGroup
	wg.Add(1)

	mockTelegram.EXPECT().
		Notify(gomock.Any(), reportChat, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, text string) error {
			if text == messageSucceeded {
				wg.Done()
			}
			return nil
		}).
		Times(2)
	mockSync.EXPECT().SynchronizePeriod(gomock.Any()).Return(&synchronizing.PeriodResult{}, nil)
	mockSync.EXPECT().SynchronizeDay(gomock.Any(), gomock.Any()).Return(&synchronizing.DayResult{Day: "14.03.2025"}, nil)
	mockTelegram.EXPECT().NotifyMarkdown(gomock.Any(), reportChat, gomock.Any()).Return(nil)

	assert.True(t, service.TriggerManualSync())
	wg.Wait()
}

func TestSalesReportSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)
	assert.NoError(t, service.Start(context.Background()))
}
