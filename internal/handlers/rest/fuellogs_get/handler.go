package fuellogs_get

import (
	"encoding/json"
	"net/http"
	"time"

	"fleetservice/internal/dto"
	"fleetservice/internal/entities"
	"fleetservice/pkg/logger"
)

const (
	filterDateLayout = "2006-01-02"
	timestampLayout  = "2006-01-02 15:04:05"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := h.service.GetEntries(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entryDTOs := make([]dto.FuelLogEntry, len(entries))
	for i, entry := range entries {
		entryDTOs[i] = dto.FuelLogEntry{
			ID:              entry.ID,
			Company:         entry.CompanyName,
			UnitNumber:      entry.UnitNumber,
			OperatorName:    entry.OperatorName,
			LogbookNumber:   entry.LogbookNumber,
			HubometerKm:     entry.HubometerKm,
			StartKm:         entry.StartKm,
			EndKm:           entry.EndKm,
			TraveledKm:      entry.TraveledKm,
			DieselLiters:    entry.DieselLiters,
			AutoLiters:      entry.AutoLiters,
			UreaLiters:      entry.UreaLiters,
			Seals:           entry.Seals,
			TotalizerLiters: entry.TotalizerLiters,
			PhotoPath:       entry.PhotoPath,
			Timestamp:       entry.CreatedAt.Format(timestampLayout),
		}
	}

	response := dto.Response{
		Success: true,
		Data:    entryDTOs,
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

// parseFilter reads the optional query filters. Date bounds are inclusive
// whole days: startDate opens at midnight, endDate closes a second before
// the next one.
func parseFilter(r *http.Request) (entities.FuelLogFilter, error) {
	var filter entities.FuelLogFilter

	query := r.URL.Query()
	if unitNumber := query.Get("unitNumber"); unitNumber != "" {
		filter.UnitNumber = &unitNumber
	}
	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(filterDateLayout, startDateStr)
		if err != nil {
			return entities.FuelLogFilter{}, err
		}
		filter.StartDate = &startDate
	}
	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(filterDateLayout, endDateStr)
		if err != nil {
			return entities.FuelLogFilter{}, err
		}
		endOfDay := endDate.Add(24*time.Hour - time.Second)
		filter.EndDate = &endOfDay
	}

	return filter, nil
}
