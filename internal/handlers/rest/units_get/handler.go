package units_get

import (
	"encoding/json"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var companyName *string
	if company := r.URL.Query().Get("company"); company != "" {
		companyName = &company
	}

	unitEntities, err := h.service.GetUnits(r.Context(), companyName)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	unitDTOs := make([]dto.Unit, len(unitEntities))
	for i, unitEntity := range unitEntities {
		unitDTOs[i].ID = unitEntity.ID
		unitDTOs[i].UnitNumber = unitEntity.UnitNumber
		unitDTOs[i].Company = unitEntity.CompanyName
		unitDTOs[i].AssignedOperatorID = unitEntity.AssignedOperatorID
		unitDTOs[i].AssignedOperatorName = unitEntity.AssignedOperatorName
		unitDTOs[i].LastServiceKm = unitEntity.LastServiceKm
		unitDTOs[i].MaintenanceIntervalKm = unitEntity.MaintenanceIntervalKm
		unitDTOs[i].MaintenanceStatus = unitEntity.MaintenanceStatus.String()
	}

	response := dto.Response{
		Success: true,
		Data:    unitDTOs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
