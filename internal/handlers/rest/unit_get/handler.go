package unit_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/compliance"
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
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP runs the compliance evaluation before answering, so the status
// in the payload is always current at the moment of the read.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitEntity, err := h.service.EvaluateAndGet(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, compliance.ErrInvalidUnitID):
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
