package entities

import (
	"time"
)

type Unit struct {
	ID                    int64
	UnitNumber            string
	CompanyID             int64
	CompanyName           string
	AssignedOperatorID    *int64
	AssignedOperatorName  *string
	LastServiceKm         float64
	MaintenanceIntervalKm float64
	MaintenanceStatus     MaintenanceStatusType
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type MaintenanceStatusType string

const (
	MaintenanceOK      MaintenanceStatusType = "ok"
	MaintenanceBlocked MaintenanceStatusType = "blocked"
)

const DefaultMaintenanceStatus = MaintenanceOK

func (t MaintenanceStatusType) String() string {
	return string(t)
}

type UnitModify struct {
	ID                    *int64
	UnitNumber            *string
	CompanyID             *int64
	LastServiceKm         *float64
	MaintenanceIntervalKm *float64
	MaintenanceStatus     *MaintenanceStatusType
}

// MaintenanceOverview is the stripped-down unit view served by the
// maintenance dashboard list.
type MaintenanceOverview struct {
	ID                    int64
	UnitNumber            string
	MaintenanceIntervalKm float64
	MaintenanceStatus     MaintenanceStatusType
}
