//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuellog_test
package fuellog

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, entry entities.FuelLogEntry) (*entities.FuelLogEntry, error)
	GetAll(ctx context.Context, filter entities.FuelLogFilter) ([]entities.FuelLogEntry, error)
	LastEndKm(ctx context.Context, unitID int64) (*float64, error)
}

type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Company, error)
}

type UnitRepository interface {
	GetIDByNumber(ctx context.Context, unitNumber string) (int64, error)
}

type OperatorRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Operator, error)
}
