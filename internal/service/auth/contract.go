//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"fleetservice/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string, userType entities.UserType) (int64, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
