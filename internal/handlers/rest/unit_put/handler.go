package unit_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/unit"
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
	var unitUpdateDTO dto.UnitUpdate
	err := json.NewDecoder(r.Body).Decode(&unitUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitEntity, err := h.service.UpdateUnit(
		r.Context(),
		unitUpdateDTO.ID,
		unitUpdateDTO.UnitNumber,
		unitUpdateDTO.Company,
	)
	if err != nil {
		switch {
		case errors.Is(err, unit.ErrMissingRequiredFields),
			errors.Is(err, unit.ErrInvalidUnitID),
			errors.Is(err, unit.ErrInvalidUnitNumber):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrUnitNotFound),
			errors.Is(err, unit.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, unit.ErrUnitConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Data: dto.Unit{
			ID:                    unitEntity.ID,
			UnitNumber:            unitEntity.UnitNumber,
			Company:               unitEntity.CompanyName,
			AssignedOperatorID:    unitEntity.AssignedOperatorID,
			AssignedOperatorName:  unitEntity.AssignedOperatorName,
			LastServiceKm:         unitEntity.LastServiceKm,
			MaintenanceIntervalKm: unitEntity.MaintenanceIntervalKm,
			MaintenanceStatus:     unitEntity.MaintenanceStatus.String(),
		},
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
