package fuellog

import (
	"encoding/json"
	"fmt"

	"fleetservice/internal/entities"
)

func ToDomain(e *FuelLogDB) (*entities.FuelLogEntry, error) {
	if e == nil {
		return nil, nil
	}

	seals := []string{}
	if len(e.Seals) > 0 {
		if err := json.Unmarshal(e.Seals, &seals); err != nil {
			return nil, fmt.Errorf("decode seals: %w", err)
		}
	}

	return &entities.FuelLogEntry{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		CompanyName:     e.CompanyName,
		UnitID:          e.UnitID,
		UnitNumber:      e.UnitNumber,
		OperatorID:      e.OperatorID,
		OperatorName:    e.OperatorName,
		LogbookNumber:   e.LogbookNumber,
		HubometerKm:     e.HubometerKm,
		StartKm:         e.StartKm,
		EndKm:           e.EndKm,
		TraveledKm:      e.TraveledKm,
		DieselLiters:    e.DieselLiters,
		AutoLiters:      e.AutoLiters,
		UreaLiters:      e.UreaLiters,
		Seals:           seals,
		TotalizerLiters: e.TotalizerLiters,
		PhotoPath:       e.PhotoPath,
		CreatedAt:       e.CreatedAt,
	}, nil
}

func encodeSeals(seals []string) ([]byte, error) {
	if seals == nil {
		seals = []string{}
	}
	encoded, err := json.Marshal(seals)
	if err != nil {
		return nil, fmt.Errorf("encode seals: %w", err)
	}
	return encoded, nil
}
