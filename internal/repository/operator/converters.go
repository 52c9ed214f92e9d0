package operator

import (
	"fleetservice/internal/entities"
)

func ToDomain(o *OperatorDB) *entities.Operator {
	if o == nil {
		return nil
	}
	return &entities.Operator{
		ID:          o.ID,
		Name:        o.Name,
		CompanyID:   o.CompanyID,
		CompanyName: o.CompanyName,
	}
}

func FromDomainModify(operatorModify *entities.OperatorModify) *OperatorModifyDB {
	if operatorModify == nil {
		return nil
	}
	return &OperatorModifyDB{
		ID:        operatorModify.ID,
		Name:      operatorModify.Name,
		CompanyID: operatorModify.CompanyID,
	}
}

func ToDomainList(operatorsDB []OperatorDB) []entities.Operator {
	if len(operatorsDB) == 0 {
		return []entities.Operator{}
	}

	result := make([]entities.Operator, len(operatorsDB))
	for i, operatorDB := range operatorsDB {
		result[i] = *ToDomain(&operatorDB)
	}
	return result
}
