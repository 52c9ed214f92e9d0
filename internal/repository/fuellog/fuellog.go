package fuellog

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, entry entities.FuelLogEntry) (*entities.FuelLogEntry, error) {
	seals, err := encodeSeals(entry.Seals)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository create error: %w", err)
	}

	query := `INSERT INTO fuel_log_entries
		(company_id, unit_id, operator_id, logbook_number, hubometer_km,
		start_km, end_km, traveled_km, diesel_liters, auto_liters,
		urea_liters, seals, totalizer_liters, photo_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`

	err = r.querier.QueryRow(
		ctx,
		query,
		entry.CompanyID,
		entry.UnitID,
		entry.OperatorID,
		entry.LogbookNumber,
		entry.HubometerKm,
		entry.StartKm,
		entry.EndKm,
		entry.TraveledKm,
		entry.DieselLiters,
		entry.AutoLiters,
		entry.UreaLiters,
		seals,
		entry.TotalizerLiters,
		entry.PhotoPath,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository create error: %w", err)
	}

	if entry.Seals == nil {
		entry.Seals = []string{}
	}
	return &entry, nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.FuelLogFilter) ([]entities.FuelLogEntry, error) {
	builder := qb.
		Select(
			"e.id", "e.company_id", "c.name", "e.unit_id", "u.unit_number",
			"e.operator_id", "o.name", "e.logbook_number", "e.hubometer_km",
			"e.start_km", "e.end_km", "e.traveled_km", "e.diesel_liters",
			"e.auto_liters", "e.urea_liters", "e.seals", "e.totalizer_liters",
			"e.photo_path", "e.created_at",
		).
		From("fuel_log_entries e").
		Join("companies c ON c.id = e.company_id").
		Join("units u ON u.id = e.unit_id").
		Join("operators o ON o.id = e.operator_id")

	// optional filters
	if filter.UnitNumber != nil {
		builder = builder.Where(sq.Eq{"u.unit_number": *filter.UnitNumber})
	}
	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"e.created_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"e.created_at": *filter.EndDate})
	}

	builder = builder.OrderBy("e.created_at DESC", "e.id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.FuelLogEntry, 0, 8)
	for rows.Next() {
		var entryModel FuelLogDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.CompanyID,
			&entryModel.CompanyName,
			&entryModel.UnitID,
			&entryModel.UnitNumber,
			&entryModel.OperatorID,
			&entryModel.OperatorName,
			&entryModel.LogbookNumber,
			&entryModel.HubometerKm,
			&entryModel.StartKm,
			&entryModel.EndKm,
			&entryModel.TraveledKm,
			&entryModel.DieselLiters,
			&entryModel.AutoLiters,
			&entryModel.UreaLiters,
			&entryModel.Seals,
			&entryModel.TotalizerLiters,
			&entryModel.PhotoPath,
			&entryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
		}

		entry, err := ToDomain(&entryModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
		}
		entries = append(entries, *entry)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository getall error: %w", err)
	}

	return entries, nil
}

// LastEndKm returns the end_km of the unit's newest entry, nil for an empty
// logbook.
func (r *Repository) LastEndKm(ctx context.Context, unitID int64) (*float64, error) {
	query := `SELECT end_km FROM fuel_log_entries
		WHERE unit_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var endKm float64
	err := r.querier.QueryRow(ctx, query, unitID).Scan(&endKm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("unexpected fuellog repository last km error: %w", err)
	}

	return &endKm, nil
}

// MaxEndKm feeds the compliance evaluator: the highest odometer reading ever
// logged for the unit, nil when the unit has no entries.
func (r *Repository) MaxEndKm(ctx context.Context, unitID int64) (*float64, error) {
	query := `SELECT MAX(end_km) FROM fuel_log_entries WHERE unit_id = $1`

	var maxKm *float64
	err := r.querier.QueryRow(ctx, query, unitID).Scan(&maxKm)
	if err != nil {
		return nil, fmt.Errorf("unexpected fuellog repository max km error: %w", err)
	}

	return maxKm, nil
}
