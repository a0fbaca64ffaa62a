package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	"github.com/vfg2006/retail-backoffice-api/pkg/log"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func TestGetDashboardSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)
	handler := GetDashboardSnapshot(mockSnapshotRepo)

	snapshotDate := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	storedSnapshot := &domain.DashboardSnapshot{
		ID:           1,
		SnapshotDate: snapshotDate,
		Summary: domain.DashboardSummary{
			TotalSalesLastWeek:   3,
			TotalRevenueLastWeek: "$350,00",
			TotalProducts:        42,
			LastWeekSales:        []domain.DailySales{{Date: "08/01/2024", Total: 3}},
		},
	}

	tests := []struct {
		name           string
		target         string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Data informada devolve o snapshot correspondente",
			target: "/v1/dashboard/snapshot?date=2024-01-08",
			setup: func() {
				mockSnapshotRepo.EXPECT().GetByDate(snapshotDate).Return(storedSnapshot, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got domain.DashboardSnapshot
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, storedSnapshot.Summary, got.Summary)
			},
		},
		{
			name:   "Sem data consulta o snapshot do dia corrente",
			target: "/v1/dashboard/snapshot",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByDate(utils.TruncateToDay(time.Now())).
					Return(storedSnapshot, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Data sem snapshot devolve 404",
			target: "/v1/dashboard/snapshot?date=2024-01-09",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByDate(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Data em formato inválido devolve 400 sem consultar",
			target:         "/v1/dashboard/snapshot?date=08/01/2024",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "VAL_003")
			},
		},
		{
			name:   "Erro do repositório devolve 500",
			target: "/v1/dashboard/snapshot?date=2024-01-08",
			setup: func() {
				mockSnapshotRepo.EXPECT().GetByDate(snapshotDate).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "SRV_002")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
