package maintenance

import (
	"context"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/repository"
	"fleetservice/internal/service/unit"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.ServiceRecordModify) (*entities.ServiceRecord, error) {
	query := `INSERT INTO service_records (unit_id, service_date, service_km, service_type, notes)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''))
		RETURNING id, unit_id, service_date, service_km, service_type, notes, created_at`

	var created entities.ServiceRecord
	err := r.querier.QueryRow(
		ctx,
		query,
		record.UnitID,
		record.ServiceDate,
		record.ServiceKm,
		record.ServiceType,
		record.Notes,
	).Scan(
		&created.ID,
		&created.UnitID,
		&created.ServiceDate,
		&created.ServiceKm,
		&created.ServiceType,
		&created.Notes,
		&created.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, unit.ErrUnitNotFound
		}
		return nil, fmt.Errorf("unexpected maintenance repository create error: %w", err)
	}

	return &created, nil
}
