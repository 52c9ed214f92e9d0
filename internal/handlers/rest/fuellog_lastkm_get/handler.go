package fuellog_lastkm_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/fuellog"
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

// ServeHTTP pre-fills the kmInicio field on the terminal. An unknown unit
// answers success with a null reading, it may simply have no entries yet.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	unitNumber := mux.Vars(r)["unitNumber"]

	lastKm, err := h.service.LastEndKm(r.Context(), unitNumber)
	if err != nil {
		switch {
		case errors.Is(err, fuellog.ErrInvalidUnitNumber):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LastKmResponse{
		Success:   true,
		LastKmFin: lastKm,
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
