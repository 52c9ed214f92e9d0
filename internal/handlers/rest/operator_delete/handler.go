package operator_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fleetservice/internal/dto"
	"fleetservice/internal/service/operator"
	"fleetservice/pkg/logger"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteOperator(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, operator.ErrInvalidOperatorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, operator.ErrOperatorNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, operator.ErrOperatorInUse):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Response{
		Success: true,
		Message: "operator deleted",
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
