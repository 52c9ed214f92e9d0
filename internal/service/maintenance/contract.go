//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_test
package maintenance

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, record entities.ServiceRecordModify) (*entities.ServiceRecord, error)
}

type UnitRepository interface {
	// ApplyService atomically resets last_service_km and restores the ok
	// status on the unit row.
	ApplyService(ctx context.Context, unitID int64, serviceKm float64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
