package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
)

const (
	salesTable = "sales"
)

type SaleRepository interface {
	ListSales() ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSales retorna todas as vendas ordenadas pela data de registro.
// Vendas sem data (registros legados) vêm por último.
func (r *saleRepository) ListSales() ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "registered_at", "total").
		From(salesTable).
		OrderBy("registered_at ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(&sale.ID, &sale.RegisteredAt, &sale.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}
