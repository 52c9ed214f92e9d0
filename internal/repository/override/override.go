package override

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/service/override"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, token entities.OverrideToken) (*entities.OverrideToken, error) {
	query := `INSERT INTO override_tokens (unit_id, code, issued_by, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, used, created_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		token.UnitID,
		token.Code,
		token.IssuedBy,
		token.ExpiresAt,
	).Scan(&token.ID, &token.Used, &token.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected override repository create error: %w", err)
	}

	return &token, nil
}

// Redeem flips used in one conditional update. Two concurrent redeems of the
// same code race on the row lock; the loser sees zero rows and is rejected.
func (r *Repository) Redeem(ctx context.Context, unitID int64, code string) error {
	query := `UPDATE override_tokens
		SET used = TRUE
		WHERE unit_id = $1 AND code = $2 AND NOT used AND expires_at > NOW()
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, unitID, code).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return override.ErrTokenRejected
		}

		return fmt.Errorf("unexpected override repository redeem error: %w", err)
	}

	return nil
}
