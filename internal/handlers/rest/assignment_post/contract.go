//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_post_test
package assignment_post

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
	Assign(ctx context.Context, unitID int64, operatorID *int64) (*entities.Unit, error)
}
