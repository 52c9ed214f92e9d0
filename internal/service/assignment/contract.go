//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Unit, error)
	GetByAssignedOperator(ctx context.Context, operatorID int64) (*entities.Unit, error)
	SetAssignedOperator(ctx context.Context, unitID int64, operatorID *int64) (*entities.Unit, error)
	GetAssignments(ctx context.Context) ([]entities.Assignment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
