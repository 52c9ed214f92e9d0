package unit

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/repository"
	"fleetservice/internal/service/assignment"
	"fleetservice/internal/service/unit"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectUnitQuery = `
	SELECT u.id, u.unit_number, u.company_id, c.name,
		u.assigned_operator_id, o.name,
		u.last_service_km, u.maintenance_interval_km, u.maintenance_status,
		u.created_at, u.updated_at
	FROM units u
	JOIN companies c ON c.id = u.company_id
	LEFT JOIN operators o ON o.id = u.assigned_operator_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, unitModifyEntity entities.UnitModify) (int64, error) {
	unitModifyModel := FromDomainModify(&unitModifyEntity)
	query := `INSERT INTO units (unit_number, company_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		unitModifyModel.UnitNumber,
		unitModifyModel.CompanyID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, unit.ErrUnitConflict
		}
		return 0, fmt.Errorf("unexpected unit repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, unitModifyEntity entities.UnitModify) (*entities.Unit, error) {
	unitModifyModel := FromDomainModify(&unitModifyEntity)

	builder := qb.
		Update("units")

	// optional fields
	if unitModifyModel.UnitNumber != nil {
		builder = builder.Set("unit_number", unitModifyModel.UnitNumber)
	}
	if unitModifyModel.CompanyID != nil {
		builder = builder.Set("company_id", unitModifyModel.CompanyID)
	}
	if unitModifyModel.LastServiceKm != nil {
		builder = builder.Set("last_service_km", unitModifyModel.LastServiceKm)
	}
	if unitModifyModel.MaintenanceIntervalKm != nil {
		builder = builder.Set("maintenance_interval_km", unitModifyModel.MaintenanceIntervalKm)
	}
	if unitModifyModel.MaintenanceStatus != nil {
		builder = builder.Set("maintenance_status", unitModifyModel.MaintenanceStatus)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": unitModifyModel.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository update error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unit.ErrUnitNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, unit.ErrUnitConflict
		}

		return nil, fmt.Errorf("unexpected unit repository update error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Unit, error) {
	query := selectUnitQuery + `
	WHERE u.id = $1`

	unitModel, err := r.scanUnit(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unit.ErrUnitNotFound
		}

		return nil, fmt.Errorf("unexpected unit repository getbyid error: %w", err)
	}

	return ToDomain(unitModel), nil
}

func (r *Repository) GetAll(ctx context.Context, companyName *string) ([]entities.Unit, error) {
	query := selectUnitQuery + `
	ORDER BY u.unit_number`

	var (
		rows pgx.Rows
		err  error
	)
	if companyName != nil {
		query = selectUnitQuery + `
	WHERE c.name = $1
	ORDER BY u.unit_number`
		rows, err = r.querier.Query(ctx, query, *companyName)
	} else {
		rows, err = r.querier.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository getall error: %w", err)
	}
	defer rows.Close()

	unitModels := make([]UnitDB, 0, 8)
	for rows.Next() {
		unitModel, err := r.scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected unit repository getall error: %w", err)
		}
		unitModels = append(unitModels, *unitModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository getall error: %w", err)
	}

	units := make([]entities.Unit, len(unitModels))
	for i := range unitModels {
		units[i] = *ToDomain(&unitModels[i])
	}
	return units, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM units WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return unit.ErrUnitInUse
		}
		return fmt.Errorf("unexpected unit repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}

func (r *Repository) GetMaintenanceOverview(ctx context.Context) ([]entities.MaintenanceOverview, error) {
	query := `
	SELECT id, unit_number, maintenance_interval_km, maintenance_status
	FROM units
	ORDER BY unit_number`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository overview error: %w", err)
	}
	defer rows.Close()

	overview := make([]entities.MaintenanceOverview, 0, 8)
	for rows.Next() {
		var overviewModel MaintenanceOverviewDB
		err := rows.Scan(
			&overviewModel.ID,
			&overviewModel.UnitNumber,
			&overviewModel.MaintenanceIntervalKm,
			&overviewModel.MaintenanceStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected unit repository overview error: %w", err)
		}
		overview = append(overview, ToOverviewDomain(&overviewModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository overview error: %w", err)
	}

	return overview, nil
}

// SetMaintenanceStatus writes the latch state. The ok to blocked transition
// is decided by the caller inside a serializable transaction.
func (r *Repository) SetMaintenanceStatus(ctx context.Context, id int64, status entities.MaintenanceStatusType) error {
	query := `UPDATE units SET maintenance_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected unit repository set status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}

// ApplyService resets the maintenance baseline after a completed service:
// the latch reopens and the counter restarts from the serviced odometer.
func (r *Repository) ApplyService(ctx context.Context, unitID int64, serviceKm float64) error {
	query := `UPDATE units
		SET last_service_km = $2, maintenance_status = 'ok', updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, unitID, serviceKm)
	if err != nil {
		return fmt.Errorf("unexpected unit repository apply service error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return unit.ErrUnitNotFound
	}

	return nil
}

func (r *Repository) GetByAssignedOperator(ctx context.Context, operatorID int64) (*entities.Unit, error) {
	query := selectUnitQuery + `
	WHERE u.assigned_operator_id = $1`

	unitModel, err := r.scanUnit(r.querier.QueryRow(ctx, query, operatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unit.ErrUnitNotFound
		}

		return nil, fmt.Errorf("unexpected unit repository get by operator error: %w", err)
	}

	return ToDomain(unitModel), nil
}

func (r *Repository) SetAssignedOperator(ctx context.Context, unitID int64, operatorID *int64) (*entities.Unit, error) {
	query := `UPDATE units SET assigned_operator_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, unitID, operatorID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, unit.ErrUnitNotFound
		}

		// partial unique index on assigned_operator_id backs the
		// one-unit-per-operator invariant under concurrent assigns
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrOperatorAlreadyAssigned
		}

		return nil, fmt.Errorf("unexpected unit repository assign error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetAssignments(ctx context.Context) ([]entities.Assignment, error) {
	query := `
	SELECT u.id, u.unit_number, c.name, u.assigned_operator_id, o.name
	FROM units u
	JOIN companies c ON c.id = u.company_id
	LEFT JOIN operators o ON o.id = u.assigned_operator_id
	ORDER BY u.unit_number`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository assignments error: %w", err)
	}
	defer rows.Close()

	assignments := make([]entities.Assignment, 0, 8)
	for rows.Next() {
		var assignmentModel AssignmentDB
		err := rows.Scan(
			&assignmentModel.UnitID,
			&assignmentModel.UnitNumber,
			&assignmentModel.CompanyName,
			&assignmentModel.AssignedOperatorID,
			&assignmentModel.AssignedOperatorName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected unit repository assignments error: %w", err)
		}
		assignments = append(assignments, ToAssignmentDomain(&assignmentModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected unit repository assignments error: %w", err)
	}

	return assignments, nil
}

func (r *Repository) GetIDByNumber(ctx context.Context, unitNumber string) (int64, error) {
	query := `SELECT id FROM units WHERE unit_number = $1 ORDER BY id LIMIT 1`

	var id int64
	err := r.querier.QueryRow(ctx, query, unitNumber).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, unit.ErrUnitNotFound
		}

		return 0, fmt.Errorf("unexpected unit repository get id error: %w", err)
	}

	return id, nil
}

func (r *Repository) scanUnit(row pgx.Row) (*UnitDB, error) {
	var unitModel UnitDB
	err := row.Scan(
		&unitModel.ID,
		&unitModel.UnitNumber,
		&unitModel.CompanyID,
		&unitModel.CompanyName,
		&unitModel.AssignedOperatorID,
		&unitModel.AssignedOperatorName,
		&unitModel.LastServiceKm,
		&unitModel.MaintenanceIntervalKm,
		&unitModel.MaintenanceStatus,
		&unitModel.CreatedAt,
		&unitModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &unitModel, nil
}
