package unit

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type UnitDB struct {
	ID                    int64
	UnitNumber            string
	CompanyID             int64
	CompanyName           string
	AssignedOperatorID    *int64
	AssignedOperatorName  *string
	LastServiceKm         float64
	MaintenanceIntervalKm float64
	MaintenanceStatus     string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type UnitModifyDB struct {
	ID                    *int64
	UnitNumber            *string
	CompanyID             *int64
	LastServiceKm         *float64
	MaintenanceIntervalKm *float64
	MaintenanceStatus     *string
}

type MaintenanceOverviewDB struct {
	ID                    int64
	UnitNumber            string
	MaintenanceIntervalKm float64
	MaintenanceStatus     string
}

type AssignmentDB struct {
	UnitID               int64
	UnitNumber           string
	CompanyName          string
	AssignedOperatorID   *int64
	AssignedOperatorName *string
}
