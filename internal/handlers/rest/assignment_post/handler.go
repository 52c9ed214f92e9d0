package assignment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/assignment"
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
	var assignmentDTO dto.AssignmentSet
	err := json.NewDecoder(r.Body).Decode(&assignmentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unitEntity, err := h.service.Assign(r.Context(), assignmentDTO.UnitID, assignmentDTO.OperatorID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidUnitID),
			errors.Is(err, assignment.ErrInvalidOperatorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrUnitNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOperatorAlreadyAssigned):
			h.writeConflict(w, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Message: "assignment updated",
		Data: dto.Assignment{
			UnitID:               unitEntity.ID,
			UnitNumber:           unitEntity.UnitNumber,
			CompanyName:          unitEntity.CompanyName,
			AssignedOperatorID:   unitEntity.AssignedOperatorID,
			AssignedOperatorName: unitEntity.AssignedOperatorName,
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

// writeConflict carries the wrapped error text so the frontend can tell the
// user which unit already holds the operator.
func (h *Handler) writeConflict(w http.ResponseWriter, conflictErr error) {
	response := dto.Response{
		Success: false,
		Message: conflictErr.Error(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
