// Package dto holds the request and response bodies of the REST API.
// Request field names keep the vocabulary the field terminals already send
// (Spanish meter names, camelCase); response payloads follow the storage
// column names.
package dto

type UnitCreate struct {
	UnitNumber string `json:"unitNumber"`
	Company    string `json:"company"`
}

type UnitUpdate struct {
	ID         int64  `json:"id"`
	UnitNumber string `json:"unitNumber"`
	Company    string `json:"company"`
}

type MaintenanceIntervalUpdate struct {
	IntervalKm float64 `json:"intervalo"`
}

type OperatorCreate struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

type OperatorUpdate struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type AssignmentSet struct {
	UnitID     int64  `json:"unitId"`
	OperatorID *int64 `json:"operatorId"`
}

type OverrideIssue struct {
	UnitID       int64  `json:"unitId"`
	SupervisorID string `json:"supervisorId"`
}

type OverrideRedeem struct {
	UnitID int64  `json:"unitId"`
	Token  string `json:"token"`
}

type ServiceRegister struct {
	UnitID      *int64   `json:"unitId"`
	Kilometraje *float64 `json:"kilometraje"`
	Fecha       *string  `json:"fecha"`
	Tipo        *string  `json:"tipo"`
	Notas       *string  `json:"notas"`
}

type FuelLogCreate struct {
	Company           *string  `json:"company"`
	UnitNumber        *string  `json:"unitNumber"`
	OperatorName      *string  `json:"operatorName"`
	BitacoraNumber    *string  `json:"bitacoraNumber"`
	KmHubodometro     *float64 `json:"kmHubodometro"`
	KmInicio          *float64 `json:"kmInicio"`
	KmFin             *float64 `json:"kmFin"`
	KmRecorridos      *float64 `json:"kmRecorridos"`
	LitrosTotales     *float64 `json:"litrosTotales"`
	LitrosAuto        *float64 `json:"litrosAuto"`
	LitrosUrea        *float64 `json:"litrosUrea"`
	Seals             []string `json:"seals"`
	LitrosTotalizador *float64 `json:"litrosTotalizador"`
	PhotoPath         *string  `json:"photoPath"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}
