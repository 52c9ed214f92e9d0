package unit

import (
	"context"
	"fmt"

	"fleetservice/internal/entities"
)

type Unit struct {
	repository  Repository
	companyRepo CompanyRepository
	txManager   TxManager
}

func New(repository Repository, companyRepo CompanyRepository, txManager TxManager) *Unit {
	return &Unit{
		repository:  repository,
		companyRepo: companyRepo,
		txManager:   txManager,
	}
}

// CreateUnit registers a unit under a company referenced by name. The unit
// number must be unique within the company.
func (s *Unit) CreateUnit(ctx context.Context, unitNumber, companyName string) (int64, error) {
	if !isValidUnitNumber(unitNumber) || !isValidCompanyName(companyName) {
		return 0, ErrMissingRequiredFields
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		company, err := s.companyRepo.GetByName(ctx, companyName)
		if err != nil {
			return fmt.Errorf("resolve company: %w", err)
		}

		id, err = s.repository.Create(ctx, entities.UnitModify{
			UnitNumber: &unitNumber,
			CompanyID:  &company.ID,
		})
		if err != nil {
			return fmt.Errorf("create unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Unit) UpdateUnit(ctx context.Context, id int64, unitNumber, companyName string) (*entities.Unit, error) {
	if id <= 0 {
		return nil, ErrInvalidUnitID
	}
	if !isValidUnitNumber(unitNumber) || !isValidCompanyName(companyName) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Unit
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		company, err := s.companyRepo.GetByName(ctx, companyName)
		if err != nil {
			return fmt.Errorf("resolve company: %w", err)
		}

		updated, err = s.repository.Update(ctx, entities.UnitModify{
			ID:         &id,
			UnitNumber: &unitNumber,
			CompanyID:  &company.ID,
		})
		if err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateInterval sets the configured maintenance interval for a unit.
func (s *Unit) UpdateInterval(ctx context.Context, id int64, intervalKm float64) (*entities.Unit, error) {
	if id <= 0 {
		return nil, ErrInvalidUnitID
	}
	if !isValidInterval(intervalKm) {
		return nil, ErrInvalidInterval
	}

	updated, err := s.repository.Update(ctx, entities.UnitModify{
		ID:                    &id,
		MaintenanceIntervalKm: &intervalKm,
	})
	if err != nil {
		return nil, fmt.Errorf("update maintenance interval: %w", err)
	}

	return updated, nil
}

func (s *Unit) DeleteUnit(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUnitID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// GetUnits lists units, optionally scoped to one company. List reads never
// run the compliance evaluator; only the single-unit fetch does.
func (s *Unit) GetUnits(ctx context.Context, companyName *string) ([]entities.Unit, error) {
	units, err := s.repository.GetAll(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("get units: %w", err)
	}

	return units, nil
}

func (s *Unit) GetMaintenanceOverview(ctx context.Context) ([]entities.MaintenanceOverview, error) {
	overview, err := s.repository.GetMaintenanceOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("get maintenance overview: %w", err)
	}

	return overview, nil
}
