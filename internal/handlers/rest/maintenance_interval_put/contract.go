//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_interval_put_test
package maintenance_interval_put

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
	UpdateInterval(ctx context.Context, id int64, intervalKm float64) (*entities.Unit, error)
}
