//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=operator_delete_test
package operator_delete

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
	DeleteOperator(ctx context.Context, id int64) error
}
