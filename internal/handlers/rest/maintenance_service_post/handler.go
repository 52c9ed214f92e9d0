package maintenance_service_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleetservice/internal/dto"
	"fleetservice/internal/entities"
	"fleetservice/internal/service/maintenance"
	"fleetservice/internal/service/unit"
	"fleetservice/pkg/logger"
)

const serviceDateLayout = "2006-01-02"

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
	var serviceDTO dto.ServiceRegister
	err := json.NewDecoder(r.Body).Decode(&serviceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.ServiceRecordModify{
		UnitID:      serviceDTO.UnitID,
		ServiceKm:   serviceDTO.Kilometraje,
		ServiceType: serviceDTO.Tipo,
		Notes:       serviceDTO.Notas,
	}

	if serviceDTO.Fecha != nil {
		serviceDate, err := time.Parse(serviceDateLayout, *serviceDTO.Fecha)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		modify.ServiceDate = &serviceDate
	}

	record, err := h.service.RegisterService(r.Context(), modify)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrMissingRequiredFields),
			errors.Is(err, maintenance.ErrInvalidUnitID),
			errors.Is(err, maintenance.ErrInvalidServiceKm):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrUnitNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateResponse{
		Success: true,
		Message: "service registered, unit status reset",
		ID:      record.ID,
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
