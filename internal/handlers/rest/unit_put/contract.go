//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unit_put_test
package unit_put

import (
	"context"

	"fleetservice/internal/entities"
	"fleetservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateUnit(ctx context.Context, id int64, unitNumber, companyName string) (*entities.Unit, error)
}
