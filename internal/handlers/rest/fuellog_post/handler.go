package fuellog_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/entities"
	"fleetservice/internal/service/fuellog"
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
	var entryDTO dto.FuelLogCreate
	err := json.NewDecoder(r.Body).Decode(&entryDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// litrosTotales is what the terminal labels the diesel meter
	modify := entities.FuelLogEntryModify{
		CompanyName:     entryDTO.Company,
		UnitNumber:      entryDTO.UnitNumber,
		OperatorName:    entryDTO.OperatorName,
		LogbookNumber:   entryDTO.BitacoraNumber,
		HubometerKm:     entryDTO.KmHubodometro,
		StartKm:         entryDTO.KmInicio,
		EndKm:           entryDTO.KmFin,
		TraveledKm:      entryDTO.KmRecorridos,
		DieselLiters:    entryDTO.LitrosTotales,
		AutoLiters:      entryDTO.LitrosAuto,
		UreaLiters:      entryDTO.LitrosUrea,
		Seals:           entryDTO.Seals,
		TotalizerLiters: entryDTO.LitrosTotalizador,
		PhotoPath:       entryDTO.PhotoPath,
	}

	entry, err := h.service.CreateEntry(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, fuellog.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fuellog.ErrReferenceNotFound):
			h.writeNotFound(w, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateResponse{
		Success: true,
		Message: "entry recorded",
		ID:      entry.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writeNotFound keeps the list of unresolved names in the message so the
// terminal can show which references are missing.
func (h *Handler) writeNotFound(w http.ResponseWriter, notFoundErr error) {
	response := dto.Response{
		Success: false,
		Message: notFoundErr.Error(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
