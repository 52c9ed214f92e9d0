//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=compliance_test
package compliance

import (
	"context"

	"fleetservice/internal/entities"
)

type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Unit, error)
	SetMaintenanceStatus(ctx context.Context, id int64, status entities.MaintenanceStatusType) error
}

type FuelLogRepository interface {
	MaxEndKm(ctx context.Context, unitID int64) (*float64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
