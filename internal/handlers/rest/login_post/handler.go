package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/auth"
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
	var loginDTO dto.Login
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingCredentials):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, auth.ErrInvalidPassword):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LoginResponse{
		Success:  true,
		UserType: session.UserType.String(),
		Token:    session.Token,
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
