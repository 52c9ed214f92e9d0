//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=maintenance_service_post_test
package maintenance_service_post

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
	RegisterService(ctx context.Context, modify entities.ServiceRecordModify) (*entities.ServiceRecord, error)
}
