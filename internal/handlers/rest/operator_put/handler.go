package operator_put

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
	var operatorUpdateDTO dto.OperatorUpdate
	err := json.NewDecoder(r.Body).Decode(&operatorUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	operatorEntity, err := h.service.UpdateOperator(
		r.Context(),
		operatorUpdateDTO.ID,
		operatorUpdateDTO.Name,
		operatorUpdateDTO.Company,
	)
	if err != nil {
		switch {
		case errors.Is(err, operator.ErrMissingRequiredFields),
			errors.Is(err, operator.ErrInvalidOperatorID),
			errors.Is(err, operator.ErrInvalidName):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, operator.ErrOperatorNotFound),
			errors.Is(err, unit.ErrCompanyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, operator.ErrOperatorConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Data: dto.Operator{
			ID:      operatorEntity.ID,
			Name:    operatorEntity.Name,
			Company: operatorEntity.CompanyName,
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
