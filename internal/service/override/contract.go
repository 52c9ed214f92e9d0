//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=override_test
package override

import (
	"context"
	"time"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, token entities.OverrideToken) (*entities.OverrideToken, error)

	// Redeem must be a single atomic conditional update: mark the token used
	// only if it matches the unit, is unused and has not expired. Zero rows
	// touched means rejection.
	Redeem(ctx context.Context, unitID int64, code string) error
}

type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Unit, error)
}

type TokenExpiryFactory interface {
	CalculateExpiry(baseTime time.Time) time.Time
}

type CodeGenerator interface {
	Generate() (string, error)
}
