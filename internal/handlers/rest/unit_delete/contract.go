//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unit_delete_test
package unit_delete

import (
	"context"

	"fleetservice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteUnit(ctx context.Context, id int64) error
}
