package maintenance_interval_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/unit"
	"fleetservice/pkg/logger"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var intervalDTO dto.MaintenanceIntervalUpdate
	err = json.NewDecoder(r.Body).Decode(&intervalDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitEntity, err := h.service.UpdateInterval(r.Context(), id, intervalDTO.IntervalKm)
	if err != nil {
		switch {
		case errors.Is(err, unit.ErrInvalidUnitID),
			errors.Is(err, unit.ErrInvalidInterval):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrUnitNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Data: dto.MaintenanceUnit{
			ID:                    unitEntity.ID,
			UnitNumber:            unitEntity.UnitNumber,
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
