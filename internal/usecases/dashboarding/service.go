// Package dashboarding calcula o resumo de vendas exibido no dashboard.
package dashboarding

import (
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
	"github.com/vfg2006/retail-backoffice-api/pkg/utils"
)

// A janela é sempre os últimos 7 dias contados a partir da venda mais
// recente, e não do relógio. Com bases históricas (ou de teste) o
// dashboard continua mostrando uma semana populada.
const lastWeekOffsetDays = -7

const dailyDateLayout = "02/01/2006"

var (
	// ErrEmptyDataset indica que a janela foi pedida sobre uma coleção vazia.
	ErrEmptyDataset = errors.New("nenhuma venda disponível para calcular a janela")
	// ErrMissingAnchor indica que nenhuma venda possui data de registro.
	ErrMissingAnchor = errors.New("nenhuma venda possui data de registro")
)

type Summarizer interface {
	Summarize() (*domain.DashboardSummary, error)
}

type Service struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) Summarizer {
	return &Service{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// salesWindow devolve as vendas cuja data de calendário é maior ou igual à
// data da venda mais recente deslocada por offsetDays (negativo = olhar para
// trás). A comparação ignora a hora; o limite é inclusivo.
func salesWindow(sales []*domain.Sale, offsetDays int) ([]*domain.Sale, error) {
	if len(sales) == 0 {
		return nil, ErrEmptyDataset
	}

	var anchor *time.Time
	for _, sale := range sales {
		if sale.RegisteredAt == nil {
			continue
		}
		if anchor == nil || sale.RegisteredAt.After(*anchor) {
			anchor = sale.RegisteredAt
		}
	}

	if anchor == nil {
		return nil, ErrMissingAnchor
	}

	windowStart := utils.TruncateToDay(*anchor).AddDate(0, 0, offsetDays)

	window := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.RegisteredAt == nil {
			continue
		}
		if !utils.TruncateToDay(*sale.RegisteredAt).Before(windowStart) {
			window = append(window, sale)
		}
	}

	return window, nil
}

// Summarize monta o resumo da última semana de atividade: total de vendas,
// receita formatada, vendas por dia e a contagem total de produtos.
// Sem nenhuma venda na base, devolve totais zerados sem erro.
func (s *Service) Summarize() (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		TotalRevenueLastWeek: utils.FormatMoney(0),
		LastWeekSales:        []domain.DailySales{},
	}

	sales, err := s.saleRepo.ListSales()
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar vendas para o dashboard")
		return nil, err
	}

	if len(sales) > 0 {
		week, err := salesWindow(sales, lastWeekOffsetDays)
		if err != nil {
			return nil, err
		}

		summary.TotalSalesLastWeek = len(week)
		summary.TotalRevenueLastWeek = utils.FormatMoney(sumRevenue(week))
		summary.LastWeekSales = groupByDay(week)
	}

	totalProducts, err := s.productRepo.CountProducts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar produtos para o dashboard")
		return nil, err
	}
	summary.TotalProducts = totalProducts

	return summary, nil
}

func sumRevenue(sales []*domain.Sale) float64 {
	var total float64
	for _, sale := range sales {
		if sale.Total != nil {
			total += *sale.Total
		}
	}
	return total
}

// groupByDay agrupa as vendas por data de calendário, em ordem crescente.
func groupByDay(sales []*domain.Sale) []domain.DailySales {
	counts := make(map[time.Time]int)
	for _, sale := range sales {
		day := utils.TruncateToDay(*sale.RegisteredAt)
		counts[day]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	daily := make([]domain.DailySales, 0, len(days))
	for _, day := range days {
		daily = append(daily, domain.DailySales{
			Date:  day.Format(dailyDateLayout),
			Total: counts[day],
		})
	}

	return daily
}
