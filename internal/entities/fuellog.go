package entities

import "time"

// FuelLogEntry is one immutable logbook row written at the fuel pump.
// Distances are kilometers, volumes liters; both come off analog meters so
// everything stays float64 end to end.
type FuelLogEntry struct {
	ID              int64
	CompanyID       int64
	CompanyName     string
	UnitID          int64
	UnitNumber      string
	OperatorID      int64
	OperatorName    string
	LogbookNumber   string
	HubometerKm     float64
	StartKm         float64
	EndKm           float64
	TraveledKm      float64
	DieselLiters    float64
	AutoLiters      float64
	UreaLiters      float64
	Seals           []string
	TotalizerLiters float64
	PhotoPath       *string
	CreatedAt       time.Time
}

// FuelLogEntryModify carries the request-side fields: companies, units and
// operators are referenced by the names punched into the field terminal and
// resolved to ids at insert time.
type FuelLogEntryModify struct {
	CompanyName     *string
	UnitNumber      *string
	OperatorName    *string
	LogbookNumber   *string
	HubometerKm     *float64
	StartKm         *float64
	EndKm           *float64
	TraveledKm      *float64
	DieselLiters    *float64
	AutoLiters      *float64
	UreaLiters      *float64
	Seals           []string
	TotalizerLiters *float64
	PhotoPath       *string
}

type FuelLogFilter struct {
	UnitNumber *string
	StartDate  *time.Time
	EndDate    *time.Time
}
