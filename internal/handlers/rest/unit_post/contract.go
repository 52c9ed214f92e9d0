//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=unit_post_test
package unit_post

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
	CreateUnit(ctx context.Context, unitNumber, companyName string) (int64, error)
}
