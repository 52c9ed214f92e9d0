//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unit_test
package unit

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, unitModifyEntity entities.UnitModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Unit, error)
	GetAll(ctx context.Context, companyName *string) ([]entities.Unit, error)
	Update(ctx context.Context, unitModifyEntity entities.UnitModify) (*entities.Unit, error)
	Delete(ctx context.Context, id int64) error
	GetMaintenanceOverview(ctx context.Context) ([]entities.MaintenanceOverview, error)
}

type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Company, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
