//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignments_get_test
package assignments_get

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
	GetAssignments(ctx context.Context) ([]entities.Assignment, error)
}
