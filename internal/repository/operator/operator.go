package operator

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/repository"
	"fleetservice/internal/service/operator"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectOperatorQuery = `
	SELECT o.id, o.name, o.company_id, c.name
	FROM operators o
	JOIN companies c ON c.id = o.company_id`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, operatorModifyEntity entities.OperatorModify) (int64, error) {
	operatorModifyModel := FromDomainModify(&operatorModifyEntity)
	query := `INSERT INTO operators (name, company_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		operatorModifyModel.Name,
		operatorModifyModel.CompanyID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, operator.ErrOperatorConflict
		}
		return 0, fmt.Errorf("unexpected operator repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, operatorModifyEntity entities.OperatorModify) (*entities.Operator, error) {
	operatorModifyModel := FromDomainModify(&operatorModifyEntity)

	builder := qb.
		Update("operators")

	// optional fields
	if operatorModifyModel.Name != nil {
		builder = builder.Set("name", operatorModifyModel.Name)
	}
	if operatorModifyModel.CompanyID != nil {
		builder = builder.Set("company_id", operatorModifyModel.CompanyID)
	}

	builder = builder.
		Where(sq.Eq{"id": operatorModifyModel.ID}).
		Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected operator repository update error: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, operator.ErrOperatorNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, operator.ErrOperatorConflict
		}

		return nil, fmt.Errorf("unexpected operator repository update error: %w", err)
	}

	return r.getByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM operators WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return operator.ErrOperatorInUse
		}
		return fmt.Errorf("unexpected operator repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return operator.ErrOperatorNotFound
	}

	return nil
}

func (r *Repository) GetAll(ctx context.Context, companyName *string) ([]entities.Operator, error) {
	query := selectOperatorQuery + `
	ORDER BY o.name`

	var (
		rows pgx.Rows
		err  error
	)
	if companyName != nil {
		query = selectOperatorQuery + `
	WHERE c.name = $1
	ORDER BY o.name`
		rows, err = r.querier.Query(ctx, query, *companyName)
	} else {
		rows, err = r.querier.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected operator repository getall error: %w", err)
	}
	defer rows.Close()

	operatorModels := make([]OperatorDB, 0, 8)
	for rows.Next() {
		var operatorModel OperatorDB
		err := rows.Scan(
			&operatorModel.ID,
			&operatorModel.Name,
			&operatorModel.CompanyID,
			&operatorModel.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected operator repository getall error: %w", err)
		}
		operatorModels = append(operatorModels, operatorModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected operator repository getall error: %w", err)
	}

	return ToDomainList(operatorModels), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Operator, error) {
	query := selectOperatorQuery + `
	WHERE o.name = $1
	ORDER BY o.id
	LIMIT 1`

	var operatorModel OperatorDB
	err := r.querier.QueryRow(ctx, query, name).Scan(
		&operatorModel.ID,
		&operatorModel.Name,
		&operatorModel.CompanyID,
		&operatorModel.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, operator.ErrOperatorNotFound
		}

		return nil, fmt.Errorf("unexpected operator repository getbyname error: %w", err)
	}

	return ToDomain(&operatorModel), nil
}

func (r *Repository) getByID(ctx context.Context, id int64) (*entities.Operator, error) {
	query := selectOperatorQuery + `
	WHERE o.id = $1`

	var operatorModel OperatorDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&operatorModel.ID,
		&operatorModel.Name,
		&operatorModel.CompanyID,
		&operatorModel.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, operator.ErrOperatorNotFound
		}

		return nil, fmt.Errorf("unexpected operator repository getbyid error: %w", err)
	}

	return ToDomain(&operatorModel), nil
}
