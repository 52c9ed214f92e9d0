package entities

import "time"

type ServiceRecord struct {
	ID          int64
	UnitID      int64
	ServiceDate time.Time
	ServiceKm   float64
	ServiceType string
	Notes       string
	CreatedAt   time.Time
}

type ServiceRecordModify struct {
	UnitID      *int64
	ServiceDate *time.Time
	ServiceKm   *float64
	ServiceType *string
	Notes       *string
}

const DefaultServiceType = "Preventivo"
