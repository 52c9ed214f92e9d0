package dto

import "time"

type Unit struct {
	ID                    int64   `json:"id"`
	UnitNumber            string  `json:"unit_number"`
	Company               string  `json:"company"`
	AssignedOperatorID    *int64  `json:"assigned_operator_id"`
	AssignedOperatorName  *string `json:"assigned_operator_name"`
	LastServiceKm         float64 `json:"last_service_km"`
	MaintenanceIntervalKm float64 `json:"maintenance_interval_km"`
	MaintenanceStatus     string  `json:"maintenance_status"`
}

type MaintenanceUnit struct {
	ID                    int64   `json:"id"`
	UnitNumber            string  `json:"unit_number"`
	MaintenanceIntervalKm float64 `json:"maintenance_interval_km"`
	MaintenanceStatus     string  `json:"maintenance_status"`
}

type Operator struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
}

type Assignment struct {
	UnitID               int64   `json:"unit_id"`
	UnitNumber           string  `json:"unit_number"`
	CompanyName          string  `json:"company_name"`
	AssignedOperatorID   *int64  `json:"assigned_operator_id"`
	AssignedOperatorName *string `json:"assigned_operator_name"`
}

type FuelLogEntry struct {
	ID              int64    `json:"id"`
	Company         string   `json:"company"`
	UnitNumber      string   `json:"unit_number"`
	OperatorName    string   `json:"operator_name"`
	LogbookNumber   string   `json:"logbook_number"`
	HubometerKm     float64  `json:"hubometer_km"`
	StartKm         float64  `json:"start_km"`
	EndKm           float64  `json:"end_km"`
	TraveledKm      float64  `json:"traveled_km"`
	DieselLiters    float64  `json:"diesel_liters"`
	AutoLiters      float64  `json:"auto_liters"`
	UreaLiters      float64  `json:"urea_liters"`
	Seals           []string `json:"seals"`
	TotalizerLiters float64  `json:"totalizer_liters"`
	PhotoPath       *string  `json:"photo_path"`
	Timestamp       string   `json:"timestamp"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type CreateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id"`
}

type LastKmResponse struct {
	Success   bool     `json:"success"`
	LastKmFin *float64 `json:"lastKmFin"`
}

type OverrideIssueResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	UserType string `json:"userType"`
	Token    string `json:"token"`
}
