package unit

import "fleetservice/internal/entities"

func ToDomain(u *UnitDB) *entities.Unit {
	if u == nil {
		return nil
	}
	return &entities.Unit{
		ID:                    u.ID,
		UnitNumber:            u.UnitNumber,
		CompanyID:             u.CompanyID,
		CompanyName:           u.CompanyName,
		AssignedOperatorID:    u.AssignedOperatorID,
		AssignedOperatorName:  u.AssignedOperatorName,
		LastServiceKm:         u.LastServiceKm,
		MaintenanceIntervalKm: u.MaintenanceIntervalKm,
		MaintenanceStatus:     entities.MaintenanceStatusType(u.MaintenanceStatus),
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func FromDomainModify(u *entities.UnitModify) *UnitModifyDB {
	if u == nil {
		return nil
	}
	unitModifyDB := &UnitModifyDB{
		ID:                    u.ID,
		UnitNumber:            u.UnitNumber,
		CompanyID:             u.CompanyID,
		LastServiceKm:         u.LastServiceKm,
		MaintenanceIntervalKm: u.MaintenanceIntervalKm,
	}

	if u.MaintenanceStatus != nil {
		status := u.MaintenanceStatus.String()
		unitModifyDB.MaintenanceStatus = &status
	}

	return unitModifyDB
}

func ToOverviewDomain(o *MaintenanceOverviewDB) entities.MaintenanceOverview {
	return entities.MaintenanceOverview{
		ID:                    o.ID,
		UnitNumber:            o.UnitNumber,
		MaintenanceIntervalKm: o.MaintenanceIntervalKm,
		MaintenanceStatus:     entities.MaintenanceStatusType(o.MaintenanceStatus),
	}
}

func ToAssignmentDomain(a *AssignmentDB) entities.Assignment {
	return entities.Assignment{
		UnitID:               a.UnitID,
		UnitNumber:           a.UnitNumber,
		CompanyName:          a.CompanyName,
		AssignedOperatorID:   a.AssignedOperatorID,
		AssignedOperatorName: a.AssignedOperatorName,
	}
}
