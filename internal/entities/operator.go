package entities

type Operator struct {
	ID          int64
	Name        string
	CompanyID   int64
	CompanyName string
}

type OperatorModify struct {
	ID        *int64
	Name      *string
	CompanyID *int64
}

type Company struct {
	ID   int64
	Name string
}

// Assignment is the unit-centric view of the exclusive operator assignment:
// one row per unit, operator fields nil when the unit is unassigned.
type Assignment struct {
	UnitID               int64
	UnitNumber           string
	CompanyName          string
	AssignedOperatorID   *int64
	AssignedOperatorName *string
}
