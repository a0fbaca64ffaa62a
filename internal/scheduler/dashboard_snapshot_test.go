package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	dashboardingmocks "github.com/vfg2006/retail-backoffice-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestSnapshotService(t *testing.T, cfg DashboardSnapshotConfig) (*DashboardSnapshotService, *dashboardingmocks.MockSummarizer, *mocks.MockDashboardSnapshotRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSummarizer := dashboardingmocks.NewMockSummarizer(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)

	service := &DashboardSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		summarizer:   mockSummarizer,
		snapshotRepo: mockSnapshotRepo,
		config:       cfg,
	}

	return service, mockSummarizer, mockSnapshotRepo
}

func TestDashboardSnapshotService_RunSnapshot(t *testing.T) {
	t.Run("Snapshot válido grava o resumo do dia", func(t *testing.T) {
		service, mockSummarizer, mockSnapshotRepo := newTestSnapshotService(t, DashboardSnapshotConfig{})

		summary := &domain.DashboardSummary{
			TotalSalesLastWeek:   3,
			TotalRevenueLastWeek: "$350,00",
			TotalProducts:        42,
			LastWeekSales:        []domain.DailySales{{Date: "08/01/2024", Total: 3}},
		}
		mockSummarizer.EXPECT().Summarize().Return(summary, nil)

		mockSnapshotRepo.EXPECT().
			SaveOrUpdateSnapshot(gomock.Any()).
			DoAndReturn(func(snapshot *domain.DashboardSnapshot) error {
				assert.Equal(t, utils.TruncateToDay(time.Now()), snapshot.SnapshotDate)
				assert.Equal(t, *summary, snapshot.Summary)
				return nil
			})

		err := service.RunSnapshot()
		require.NoError(t, err)

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Erro no resumo não grava snapshot", func(t *testing.T) {
		service, mockSummarizer, _ := newTestSnapshotService(t, DashboardSnapshotConfig{})

		mockSummarizer.EXPECT().Summarize().Return(nil, assert.AnError)

		err := service.RunSnapshot()
		assert.Error(t, err)
	})

	t.Run("Erro ao gravar é propagado", func(t *testing.T) {
		service, mockSummarizer, mockSnapshotRepo := newTestSnapshotService(t, DashboardSnapshotConfig{})

		mockSummarizer.EXPECT().Summarize().Return(&domain.DashboardSummary{}, nil)
		mockSnapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(assert.AnError)

		err := service.RunSnapshot()
		assert.Error(t, err)
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		service, _, _ := newTestSnapshotService(t, DashboardSnapshotConfig{})

		service.syncRunning = true

		err := service.RunSnapshot()
		assert.NoError(t, err)
	})
}

func TestDashboardSnapshotService_Start(t *testing.T) {
	t.Run("Cron desabilitada não agenda nada", func(t *testing.T) {
		service, _, _ := newTestSnapshotService(t, DashboardSnapshotConfig{Enabled: false})

		err := service.Start(context.Background())
		assert.NoError(t, err)
		assert.False(t, service.scheduler.IsRunning())
	})

	t.Run("Cron habilitada agenda e para com o contexto", func(t *testing.T) {
		service, _, _ := newTestSnapshotService(t, DashboardSnapshotConfig{
			CronSchedule: "0 5 * * *",
			Enabled:      true,
		})

		ctx, cancel := context.WithCancel(context.Background())

		err := service.Start(ctx)
		require.NoError(t, err)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 2*time.Second, 50*time.Millisecond)
	})

	t.Run("Expressão cron inválida devolve erro", func(t *testing.T) {
		service, _, _ := newTestSnapshotService(t, DashboardSnapshotConfig{
			CronSchedule: "isso não é cron",
			Enabled:      true,
		})

		err := service.Start(context.Background())
		assert.Error(t, err)
	})
}
