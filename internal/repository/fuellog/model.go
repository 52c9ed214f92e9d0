package fuellog

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

// FuelLogDB mirrors one fuel_log_entries row joined with the reference
// tables for display names. Seals travel as a jsonb array.
type FuelLogDB struct {
	ID              int64
	CompanyID       int64
	CompanyName     string
	UnitID          int64
	UnitNumber      string
	OperatorID      int64
	OperatorName    string
	LogbookNumber   string
	HubometerKm     float64
	StartKm         float64
	EndKm           float64
	TraveledKm      float64
	DieselLiters    float64
	AutoLiters      float64
	UreaLiters      float64
	Seals           []byte
	TotalizerLiters float64
	PhotoPath       *string
	CreatedAt       time.Time
}
