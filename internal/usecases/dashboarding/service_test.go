package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSalesWindow(t *testing.T) {
	tests := []struct {
		name        string
		sales       []*domain.Sale
		expectedErr error
		expectedIDs []int64
	}{
		{
			name:        "Coleção vazia deve retornar ErrEmptyDataset",
			sales:       []*domain.Sale{},
			expectedErr: ErrEmptyDataset,
		},
		{
			name: "Todas as vendas sem data devem retornar ErrMissingAnchor",
			sales: []*domain.Sale{
				{ID: 1, Total: floatPtr(100)},
				{ID: 2, Total: floatPtr(50)},
			},
			expectedErr: ErrMissingAnchor,
		},
		{
			name: "Limite inclusivo - venda exatamente 7 dias antes entra na janela",
			sales: []*domain.Sale{
				{ID: 1, RegisteredAt: timePtr(2024, 1, 1, 23, 59), Total: floatPtr(100)},
				{ID: 2, RegisteredAt: timePtr(2024, 1, 8, 14, 30), Total: floatPtr(200)},
			},
			expectedIDs: []int64{1, 2},
		},
		{
			name: "Venda anterior à janela fica de fora",
			sales: []*domain.Sale{
				{ID: 1, RegisteredAt: timePtr(2023, 12, 31, 10, 0), Total: floatPtr(100)},
				{ID: 2, RegisteredAt: timePtr(2024, 1, 5, 10, 0), Total: floatPtr(50)},
				{ID: 3, RegisteredAt: timePtr(2024, 1, 8, 10, 0), Total: floatPtr(200)},
			},
			expectedIDs: []int64{2, 3},
		},
		{
			name: "Âncora é a venda mais recente independente da ordem da lista",
			sales: []*domain.Sale{
				{ID: 1, RegisteredAt: timePtr(2024, 1, 8, 10, 0), Total: floatPtr(200)},
				{ID: 2, RegisteredAt: timePtr(2023, 12, 20, 10, 0), Total: floatPtr(100)},
				{ID: 3, RegisteredAt: timePtr(2024, 1, 3, 10, 0), Total: floatPtr(50)},
			},
			expectedIDs: []int64{1, 3},
		},
		{
			name: "Vendas sem data são ignoradas mas não invalidam a janela",
			sales: []*domain.Sale{
				{ID: 1, RegisteredAt: nil, Total: floatPtr(999)},
				{ID: 2, RegisteredAt: timePtr(2024, 1, 8, 10, 0), Total: floatPtr(200)},
			},
			expectedIDs: []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := salesWindow(tt.sales, lastWeekOffsetDays)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, window)
				return
			}

			assert.NoError(t, err)

			ids := make([]int64, 0, len(window))
			for _, sale := range window {
				ids = append(ids, sale.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockProductRepo := mocks.NewMockProductRepository(ctrl)

	service := &Service{
		saleRepo:    mockSaleRepo,
		productRepo: mockProductRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, summary *domain.DashboardSummary, err error)
	}{
		{
			name: "Janela completa - três vendas em dias distintos",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return([]*domain.Sale{
					{ID: 1, RegisteredAt: timePtr(2024, 1, 1, 9, 0), Total: floatPtr(100)},
					{ID: 2, RegisteredAt: timePtr(2024, 1, 5, 12, 0), Total: floatPtr(50)},
					{ID: 3, RegisteredAt: timePtr(2024, 1, 8, 18, 0), Total: floatPtr(200)},
				}, nil)
				mockProductRepo.EXPECT().CountProducts().Return(42, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, summary.TotalSalesLastWeek)
				assert.Equal(t, "$350,00", summary.TotalRevenueLastWeek)
				assert.Equal(t, 42, summary.TotalProducts)
				assert.Equal(t, []domain.DailySales{
					{Date: "01/01/2024", Total: 1},
					{Date: "05/01/2024", Total: 1},
					{Date: "08/01/2024", Total: 1},
				}, summary.LastWeekSales)
			},
		},
		{
			name: "Base sem vendas devolve totais zerados sem erro",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return([]*domain.Sale{}, nil)
				mockProductRepo.EXPECT().CountProducts().Return(12, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, summary.TotalSalesLastWeek)
				assert.Equal(t, "$0,00", summary.TotalRevenueLastWeek)
				assert.Equal(t, 12, summary.TotalProducts)
				assert.Empty(t, summary.LastWeekSales)
			},
		},
		{
			name: "Vendas do mesmo dia são agrupadas no mesmo balde",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return([]*domain.Sale{
					{ID: 1, RegisteredAt: timePtr(2024, 1, 8, 9, 0), Total: floatPtr(100)},
					{ID: 2, RegisteredAt: timePtr(2024, 1, 8, 17, 0), Total: floatPtr(150)},
					{ID: 3, RegisteredAt: timePtr(2024, 1, 6, 11, 0), Total: floatPtr(50)},
				}, nil)
				mockProductRepo.EXPECT().CountProducts().Return(5, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, summary.TotalSalesLastWeek)
				assert.Equal(t, "$300,00", summary.TotalRevenueLastWeek)
				assert.Equal(t, []domain.DailySales{
					{Date: "06/01/2024", Total: 1},
					{Date: "08/01/2024", Total: 2},
				}, summary.LastWeekSales)
			},
		},
		{
			name: "Venda sem valor conta no total mas não soma na receita",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return([]*domain.Sale{
					{ID: 1, RegisteredAt: timePtr(2024, 1, 8, 9, 0), Total: floatPtr(200)},
					{ID: 2, RegisteredAt: timePtr(2024, 1, 7, 9, 0), Total: nil},
				}, nil)
				mockProductRepo.EXPECT().CountProducts().Return(0, nil)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, summary.TotalSalesLastWeek)
				assert.Equal(t, "$200,00", summary.TotalRevenueLastWeek)
			},
		},
		{
			name: "Erro ao consultar vendas é propagado",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Erro ao contar produtos é propagado",
			setup: func() {
				mockSaleRepo.EXPECT().ListSales().Return([]*domain.Sale{
					{ID: 1, RegisteredAt: timePtr(2024, 1, 8, 9, 0), Total: floatPtr(100)},
				}, nil)
				mockProductRepo.EXPECT().CountProducts().Return(0, assert.AnError)
			},
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summary, err := service.Summarize()

			tt.validate(t, summary, err)
		})
	}
}

func timePtr(year int, month time.Month, day, hour, min int) *time.Time {
	t := time.Date(year, month, day, hour, min, 0, 0, time.UTC)
	return &t
}

func floatPtr(f float64) *float64 {
	return &f
}
