package assignment

import (
	"context"
	"errors"
	"fmt"

	"fleetservice/internal/entities"
	"fleetservice/internal/service/unit"
)

// Assignment enforces the exclusive-assignment rule: an operator drives at
// most one unit at a time. The conflict check and the write run inside one
// serializable transaction, and the storage layer backs the same rule with a
// partial unique index, so two concurrent assignments of one operator can
// never both land.
type Assignment struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Assignment {
	return &Assignment{
		repository: repository,
		txManager:  txManager,
	}
}

// Assign sets or clears the operator assigned to a unit. A nil operatorID is
// a deassignment and always applies. Re-assigning the operator the unit
// already has is a no-op success.
func (s *Assignment) Assign(ctx context.Context, unitID int64, operatorID *int64) (*entities.Unit, error) {
	if unitID <= 0 {
		return nil, ErrInvalidUnitID
	}
	if operatorID != nil && *operatorID <= 0 {
		return nil, ErrInvalidOperatorID
	}

	var assigned *entities.Unit
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if operatorID != nil {
			holder, err := s.repository.GetByAssignedOperator(ctx, *operatorID)
			switch {
			case err == nil && holder.ID == unitID:
				// idempotent re-assign
				assigned = holder
				return nil
			case err == nil:
				return fmt.Errorf("unit %s: %w", holder.UnitNumber, ErrOperatorAlreadyAssigned)
			case !errors.Is(err, unit.ErrUnitNotFound):
				return fmt.Errorf("check current assignment: %w", err)
			}
		}

		updated, err := s.repository.SetAssignedOperator(ctx, unitID, operatorID)
		if err != nil {
			return fmt.Errorf("set assigned operator: %w", err)
		}

		assigned = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assigned, nil
}

func (s *Assignment) GetAssignments(ctx context.Context) ([]entities.Assignment, error) {
	assignments, err := s.repository.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("get assignments: %w", err)
	}

	return assignments, nil
}
