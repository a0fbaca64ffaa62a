package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/database/postgres"
)

const (
	productsTable = "products"
)

type ProductRepository interface {
	CountProducts() (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CountProducts() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return total, nil
}
