package maintenance

import (
	"context"
	"fmt"

	"fleetservice/internal/entities"
)

// Maintenance records service events. Registration is the only path that
// clears the compliance latch: the history insert and the unit reset happen
// in one transaction, so a failure in either leaves no partial state.
type Maintenance struct {
	repository Repository
	unitRepo   UnitRepository
	txManager  TxManager
}

func New(repository Repository, unitRepo UnitRepository, txManager TxManager) *Maintenance {
	return &Maintenance{
		repository: repository,
		unitRepo:   unitRepo,
		txManager:  txManager,
	}
}

func (s *Maintenance) RegisterService(ctx context.Context, modify entities.ServiceRecordModify) (*entities.ServiceRecord, error) {
	if modify.UnitID == nil || modify.ServiceKm == nil || modify.ServiceDate == nil {
		return nil, ErrMissingRequiredFields
	}
	if *modify.UnitID <= 0 {
		return nil, ErrInvalidUnitID
	}
	if *modify.ServiceKm < 0 {
		return nil, ErrInvalidServiceKm
	}

	if modify.ServiceType == nil || *modify.ServiceType == "" {
		serviceType := entities.DefaultServiceType
		modify.ServiceType = &serviceType
	}

	var record *entities.ServiceRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repository.Create(ctx, modify)
		if err != nil {
			return fmt.Errorf("insert service record: %w", err)
		}

		if err := s.unitRepo.ApplyService(ctx, *modify.UnitID, *modify.ServiceKm); err != nil {
			return fmt.Errorf("apply service to unit: %w", err)
		}

		record = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
