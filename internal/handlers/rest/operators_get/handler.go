package operators_get

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

	operatorEntities, err := h.service.GetOperators(r.Context(), companyName)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	operatorDTOs := make([]dto.Operator, len(operatorEntities))
	for i, operatorEntity := range operatorEntities {
		operatorDTOs[i].ID = operatorEntity.ID
		operatorDTOs[i].Name = operatorEntity.Name
		operatorDTOs[i].Company = operatorEntity.CompanyName
	}

	response := dto.Response{
		Success: true,
		Data:    operatorDTOs,
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
