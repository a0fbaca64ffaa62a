package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-backoffice-api/internal/domain"
)

const (
	dashboardSnapshotsTable = "dashboard_snapshots"
)

type DashboardSnapshotRepository interface {
	SaveOrUpdateSnapshot(snapshot *domain.DashboardSnapshot) error
	GetByDate(date time.Time) (*domain.DashboardSnapshot, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdateSnapshot grava o resumo do dia; um snapshot por data.
func (r *dashboardSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.DashboardSnapshot) error {
	summaryJSON, err := json.Marshal(snapshot.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo: %w", err)
	}

	query, args, err := squirrel.
		Insert(dashboardSnapshotsTable).
		Columns("snapshot_date", "summary", "created_at", "updated_at").
		Values(snapshot.SnapshotDate.Format(time.DateOnly), summaryJSON, time.Now(), time.Now()).
		Suffix(`
			ON CONFLICT (snapshot_date) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar snapshot do dashboard: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) GetByDate(date time.Time) (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "snapshot_date", "summary", "created_at", "updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"snapshot_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	var summaryJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.SnapshotDate,
		&summaryJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar snapshot: %w", err)
	}

	if err := json.Unmarshal(summaryJSON, &snapshot.Summary); err != nil {
		return nil, fmt.Errorf("erro ao desserializar resumo: %w", err)
	}

	return &snapshot, nil
}
