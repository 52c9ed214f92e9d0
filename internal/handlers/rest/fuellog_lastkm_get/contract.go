//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuellog_lastkm_get_test
package fuellog_lastkm_get

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
	LastEndKm(ctx context.Context, unitNumber string) (*float64, error)
}
