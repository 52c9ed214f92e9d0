package company

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
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

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Company, error) {
	query := `SELECT id, name FROM companies WHERE name = $1`

	var companyEntity entities.Company
	err := r.querier.QueryRow(ctx, query, name).
		Scan(&companyEntity.ID, &companyEntity.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unit.ErrCompanyNotFound
		}

		return nil, fmt.Errorf("unexpected company repository getbyname error: %w", err)
	}

	return &companyEntity, nil
}
