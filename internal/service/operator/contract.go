//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=operator_test
package operator

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, operatorModifyEntity entities.OperatorModify) (int64, error)
	GetAll(ctx context.Context, companyName *string) ([]entities.Operator, error)
	Update(ctx context.Context, operatorModifyEntity entities.OperatorModify) (*entities.Operator, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Company, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
