package assignments_get

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
	assignmentEntities, err := h.service.GetAssignments(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	assignmentDTOs := make([]dto.Assignment, len(assignmentEntities))
	for i, assignmentEntity := range assignmentEntities {
		assignmentDTOs[i].UnitID = assignmentEntity.UnitID
		assignmentDTOs[i].UnitNumber = assignmentEntity.UnitNumber
		assignmentDTOs[i].CompanyName = assignmentEntity.CompanyName
		assignmentDTOs[i].AssignedOperatorID = assignmentEntity.AssignedOperatorID
		assignmentDTOs[i].AssignedOperatorName = assignmentEntity.AssignedOperatorName
	}

	response := dto.Response{
		Success: true,
		Data:    assignmentDTOs,
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
