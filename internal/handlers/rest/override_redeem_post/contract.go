//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=override_redeem_post_test
package override_redeem_post

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
	Redeem(ctx context.Context, unitID int64, code string) error
}
