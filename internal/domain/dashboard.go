package domain

import "time"

// DailySales é o total de vendas de um dia dentro da última semana.
// A data é formatada como dd/mm/yyyy, no mesmo formato exibido pelo frontend.
type DailySales struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type DashboardSummary struct {
	TotalSalesLastWeek   int          `json:"total_sales_last_week"`
	TotalRevenueLastWeek string       `json:"total_revenue_last_week"`
	TotalProducts        int          `json:"total_products"`
	LastWeekSales        []DailySales `json:"last_week_sales"`
}

// DashboardSnapshot é o resumo persistido pelo agendador diário.
type DashboardSnapshot struct {
	ID           int64            `json:"id"`
	SnapshotDate time.Time        `json:"snapshot_date"`
	Summary      DashboardSummary `json:"summary"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
