package compliance

import (
	"context"
	"fmt"

	"fleetservice/internal/entities"
)

// Compliance decides whether a unit has run past its maintenance interval.
//
// The check is lazy: there is no background sweep, the evaluation happens on
// the single-unit fetch path. Blocking is a one-way latch: this service only
// ever writes ok -> blocked, and only an explicit service registration
// (internal/service/maintenance) restores ok.
type Compliance struct {
	unitRepo    UnitRepository
	fuelLogRepo FuelLogRepository
	txManager   TxManager
}

func New(unitRepo UnitRepository, fuelLogRepo FuelLogRepository, txManager TxManager) *Compliance {
	return &Compliance{
		unitRepo:    unitRepo,
		fuelLogRepo: fuelLogRepo,
		txManager:   txManager,
	}
}

// EvaluateAndGet returns the unit with its compliance status brought up to
// date. Despite being served on a GET route, this can write the unit's
// status; the method name keeps that explicit for callers.
func (s *Compliance) EvaluateAndGet(ctx context.Context, unitID int64) (*entities.Unit, error) {
	if unitID <= 0 {
		return nil, ErrInvalidUnitID
	}

	var evaluated *entities.Unit
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		unit, err := s.unitRepo.GetByID(ctx, unitID)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}

		maxEndKm, err := s.fuelLogRepo.MaxEndKm(ctx, unitID)
		if err != nil {
			return fmt.Errorf("max logged distance: %w", err)
		}

		if shouldBlock(unit, maxEndKm) {
			if err := s.unitRepo.SetMaintenanceStatus(ctx, unitID, entities.MaintenanceBlocked); err != nil {
				return fmt.Errorf("set maintenance status: %w", err)
			}
			unit.MaintenanceStatus = entities.MaintenanceBlocked
		}

		evaluated = unit
		return nil
	})
	if err != nil {
		return nil, err
	}

	return evaluated, nil
}

// shouldBlock applies the threshold rule: a unit with no logbook entries is
// never blocked, and the accrued distance must strictly exceed the interval
// (running exactly at the interval is still compliant).
func shouldBlock(unit *entities.Unit, maxEndKm *float64) bool {
	if unit.MaintenanceStatus == entities.MaintenanceBlocked {
		// already latched, nothing to decide
		return false
	}
	if maxEndKm == nil || *maxEndKm <= 0 {
		return false
	}
	return *maxEndKm-unit.LastServiceKm > unit.MaintenanceIntervalKm
}
