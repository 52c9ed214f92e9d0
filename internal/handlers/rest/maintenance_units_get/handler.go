package maintenance_units_get

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
	overviewEntities, err := h.service.GetMaintenanceOverview(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	overviewDTOs := make([]dto.MaintenanceUnit, len(overviewEntities))
	for i, overview := range overviewEntities {
		overviewDTOs[i].ID = overview.ID
		overviewDTOs[i].UnitNumber = overview.UnitNumber
		overviewDTOs[i].MaintenanceIntervalKm = overview.MaintenanceIntervalKm
		overviewDTOs[i].MaintenanceStatus = overview.MaintenanceStatus.String()
	}

	response := dto.Response{
		Success: true,
		Data:    overviewDTOs,
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
