//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_units_get_test
package maintenance_units_get

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
	GetMaintenanceOverview(ctx context.Context) ([]entities.MaintenanceOverview, error)
}
