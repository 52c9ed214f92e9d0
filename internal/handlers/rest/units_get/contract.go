//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=units_get_test
package units_get

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
	GetUnits(ctx context.Context, companyName *string) ([]entities.Unit, error)
}
