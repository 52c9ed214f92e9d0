package operator

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type OperatorDB struct {
	ID          int64
	Name        string
	CompanyID   int64
	CompanyName string
}

type OperatorModifyDB struct {
	ID        *int64
	Name      *string
	CompanyID *int64
}
