//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=operator_post_test
package operator_post

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
	CreateOperator(ctx context.Context, name, companyName string) (int64, error)
}
