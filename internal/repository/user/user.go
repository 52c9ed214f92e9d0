package user

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/repository"
	"fleetservice/internal/service/auth"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
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

func (r *Repository) Create(ctx context.Context, username, passwordHash string, userType entities.UserType) (int64, error) {
	query := `INSERT INTO users (username, password_hash, user_type)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, username, passwordHash, userType.String()).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrUserConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `SELECT id, username, password_hash, user_type, created_at
		FROM users
		WHERE username = $1`

	var userEntity entities.User
	err := r.querier.QueryRow(ctx, query, username).Scan(
		&userEntity.ID,
		&userEntity.Username,
		&userEntity.PasswordHash,
		&userEntity.UserType,
		&userEntity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyusername error: %w", err)
	}

	return &userEntity, nil
}
