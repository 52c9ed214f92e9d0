//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fuellog_post_test
package fuellog_post

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
	CreateEntry(ctx context.Context, modify entities.FuelLogEntryModify) (*entities.FuelLogEntry, error)
}
