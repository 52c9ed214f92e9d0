package operator_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/operator"
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
	var operatorCreateDTO dto.OperatorCreate
	err := json.NewDecoder(r.Body).Decode(&operatorCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateOperator(r.Context(), operatorCreateDTO.Name, operatorCreateDTO.Company)
	if err != nil {
		switch {
		case errors.Is(err, operator.ErrMissingRequiredFields),
			errors.Is(err, operator.ErrInvalidName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, operator.ErrOperatorConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateResponse{
		Success: true,
		ID:      id,
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
