package override_redeem_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/override"
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
	var redeemDTO dto.OverrideRedeem
	err := json.NewDecoder(r.Body).Decode(&redeemDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Redeem(r.Context(), redeemDTO.UnitID, redeemDTO.Token)
	if err != nil {
		switch {
		case errors.Is(err, override.ErrInvalidUnitID),
			errors.Is(err, override.ErrInvalidCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, override.ErrTokenRejected):
			// single generic rejection, no sub-cause in the response
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Message: "authorized",
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
