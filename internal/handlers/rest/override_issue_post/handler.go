package override_issue_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/override"
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

// ServeHTTP returns the plaintext code exactly once. It is never readable
// again through the API; the supervisor relays it to the driver out-of-band.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var issueDTO dto.OverrideIssue
	err := json.NewDecoder(r.Body).Decode(&issueDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token, err := h.service.Issue(r.Context(), issueDTO.UnitID, issueDTO.SupervisorID)
	if err != nil {
		switch {
		case errors.Is(err, override.ErrInvalidUnitID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, unit.ErrUnitNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OverrideIssueResponse{
		Success:   true,
		Token:     token.Code,
		ExpiresAt: token.ExpiresAt,
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
