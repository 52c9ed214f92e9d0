package fuellog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleetservice/internal/entities"
	"fleetservice/internal/service/operator"
	"fleetservice/internal/service/unit"
)

// FuelLog is the append-only logbook the compliance evaluator reads from.
// Entries arrive from the fuel pump terminal referencing company, unit and
// operator by name; this service resolves those to ids before the insert.
type FuelLog struct {
	repository   Repository
	companyRepo  CompanyRepository
	unitRepo     UnitRepository
	operatorRepo OperatorRepository
}

func New(
	repository Repository,
	companyRepo CompanyRepository,
	unitRepo UnitRepository,
	operatorRepo OperatorRepository,
) *FuelLog {
	return &FuelLog{
		repository:   repository,
		companyRepo:  companyRepo,
		unitRepo:     unitRepo,
		operatorRepo: operatorRepo,
	}
}

func (s *FuelLog) CreateEntry(ctx context.Context, modify entities.FuelLogEntryModify) (*entities.FuelLogEntry, error) {
	if isBlank(modify.CompanyName) || isBlank(modify.UnitNumber) || isBlank(modify.OperatorName) {
		return nil, ErrMissingRequiredFields
	}

	entry := entities.FuelLogEntry{
		CompanyName:  strings.TrimSpace(*modify.CompanyName),
		UnitNumber:   strings.TrimSpace(*modify.UnitNumber),
		OperatorName: strings.TrimSpace(*modify.OperatorName),
	}

	var missing []string

	company, err := s.companyRepo.GetByName(ctx, entry.CompanyName)
	switch {
	case errors.Is(err, unit.ErrCompanyNotFound):
		missing = append(missing, fmt.Sprintf("company %q", entry.CompanyName))
	case err != nil:
		return nil, fmt.Errorf("resolve company: %w", err)
	default:
		entry.CompanyID = company.ID
	}

	unitID, err := s.unitRepo.GetIDByNumber(ctx, entry.UnitNumber)
	switch {
	case errors.Is(err, unit.ErrUnitNotFound):
		missing = append(missing, fmt.Sprintf("unit %q", entry.UnitNumber))
	case err != nil:
		return nil, fmt.Errorf("resolve unit: %w", err)
	default:
		entry.UnitID = unitID
	}

	operatorEntity, err := s.operatorRepo.GetByName(ctx, entry.OperatorName)
	switch {
	case errors.Is(err, operator.ErrOperatorNotFound):
		missing = append(missing, fmt.Sprintf("operator %q", entry.OperatorName))
	case err != nil:
		return nil, fmt.Errorf("resolve operator: %w", err)
	default:
		entry.OperatorID = operatorEntity.ID
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrReferenceNotFound)
	}

	applyMeterFields(&entry, modify)

	created, err := s.repository.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create logbook entry: %w", err)
	}

	return created, nil
}

func (s *FuelLog) GetEntries(ctx context.Context, filter entities.FuelLogFilter) ([]entities.FuelLogEntry, error) {
	entries, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get logbook entries: %w", err)
	}

	return entries, nil
}

// LastEndKm returns the final odometer reading of the unit's newest entry.
// An unknown unit number or an empty logbook both yield nil: the terminal
// treats either as "first entry for this unit", not as an error.
func (s *FuelLog) LastEndKm(ctx context.Context, unitNumber string) (*float64, error) {
	if strings.TrimSpace(unitNumber) == "" {
		return nil, ErrInvalidUnitNumber
	}

	unitID, err := s.unitRepo.GetIDByNumber(ctx, unitNumber)
	if errors.Is(err, unit.ErrUnitNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve unit: %w", err)
	}

	lastKm, err := s.repository.LastEndKm(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("last end km: %w", err)
	}

	return lastKm, nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func applyMeterFields(entry *entities.FuelLogEntry, modify entities.FuelLogEntryModify) {
	if modify.LogbookNumber != nil {
		entry.LogbookNumber = *modify.LogbookNumber
	}
	if modify.HubometerKm != nil {
		entry.HubometerKm = *modify.HubometerKm
	}
	if modify.StartKm != nil {
		entry.StartKm = *modify.StartKm
	}
	if modify.EndKm != nil {
		entry.EndKm = *modify.EndKm
	}
	if modify.TraveledKm != nil {
		entry.TraveledKm = *modify.TraveledKm
	}
	if modify.DieselLiters != nil {
		entry.DieselLiters = *modify.DieselLiters
	}
	if modify.AutoLiters != nil {
		entry.AutoLiters = *modify.AutoLiters
	}
	if modify.UreaLiters != nil {
		entry.UreaLiters = *modify.UreaLiters
	}
	if modify.TotalizerLiters != nil {
		entry.TotalizerLiters = *modify.TotalizerLiters
	}
	entry.Seals = modify.Seals
	entry.PhotoPath = modify.PhotoPath
}
