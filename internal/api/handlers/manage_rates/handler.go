package manage_rates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	"github.com/vialibre/dispatch-service/internal/service/tariffs"
	"github.com/vialibre/dispatch-service/internal/service/tariffs/models"
)

const (
	msgInvalidZoneID      = "ID de zona inválido"
	msgInvalidRateID      = "ID de tarifa inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidQuery       = "parámetros de consulta inválidos"
	msgZoneNotFound       = "zona no encontrada"
	msgRateNotFound       = "tarifa no encontrada"
)

type Handler struct {
	service TariffsService
	logger  Logger
}

func NewHandler(service TariffsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/zones/{zoneId}/rates
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.pathID(w, r, "zoneId", msgInvalidZoneID, "POST /zones/{id}/rates")
	if !ok {
		return
	}

	var req models.RateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /zones/{id}/rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateRate(r.Context(), zoneID, &req)
	if err != nil {
		h.respondError(w, "POST /zones/{id}/rates", err)
		return
	}

	h.logger.Info("POST /zones/{id}/rates - Rate created: rate_id=%d, zone_id=%d", result.ID, zoneID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/rates/{rateId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rateID, ok := h.pathID(w, r, "rateId", msgInvalidRateID, "GET /rates/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetRate(r.Context(), rateID)
	if err != nil {
		h.respondError(w, "GET /rates/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/zones/{zoneId}/rates
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.pathID(w, r, "zoneId", msgInvalidZoneID, "GET /zones/{id}/rates")
	if !ok {
		return
	}

	result, err := h.service.ListRates(r.Context(), zoneID)
	if err != nil {
		h.respondError(w, "GET /zones/{id}/rates", err)
		return
	}

	h.logger.Info("GET /zones/{id}/rates - Rates listed: zone_id=%d, total=%d", zoneID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/zones/{zoneId}/rates/{rateId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.pathID(w, r, "zoneId", msgInvalidZoneID, "PUT /zones/{id}/rates/{id}")
	if !ok {
		return
	}
	rateID, ok := h.pathID(w, r, "rateId", msgInvalidRateID, "PUT /zones/{id}/rates/{id}")
	if !ok {
		return
	}

	var req models.RateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /zones/{id}/rates/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRate(r.Context(), rateID, zoneID, &req)
	if err != nil {
		h.respondError(w, "PUT /zones/{id}/rates/{id}", err)
		return
	}

	h.logger.Info("PUT /zones/{id}/rates/{id} - Rate updated: rate_id=%d", rateID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/rates/{rateId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	rateID, ok := h.pathID(w, r, "rateId", msgInvalidRateID, "DELETE /rates/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteRate(r.Context(), rateID); err != nil {
		h.respondError(w, "DELETE /rates/{id}", err)
		return
	}

	h.logger.Info("DELETE /rates/{id} - Rate deleted: rate_id=%d", rateID)
	handlers.RespondNoContent(w)
}

// Lookup GET /api/v1/rates/lookup
// Query params: zoneId (required), tripType (required), equipmentType
// (required), originType, distanceKm
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	zoneID, err := strconv.ParseInt(query.Get("zoneId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /rates/lookup - Invalid zone ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidZoneID)
		return
	}

	req := &models.RateLookupRequest{
		ZoneID:        zoneID,
		TripType:      query.Get("tripType"),
		EquipmentType: query.Get("equipmentType"),
	}
	if originType := query.Get("originType"); originType != "" {
		req.OriginType = &originType
	}
	if raw := query.Get("distanceKm"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /rates/lookup - Invalid distance: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.DistanceKm = &distance
	}

	result, err := h.service.LookupRates(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /rates/lookup", err)
		return
	}

	h.logger.Info("GET /rates/lookup - Rates matched: zone_id=%d, total=%d", zoneID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name, msg, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid %s: %v", op, name, err)
		handlers.RespondBadRequest(w, msg)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, tariffs.ErrZoneNotFound):
		h.logger.Warn("%s - Zone not found", op)
		handlers.RespondNotFound(w, msgZoneNotFound)

	case errors.Is(err, tariffs.ErrRateNotFound):
		h.logger.Warn("%s - Rate not found", op)
		handlers.RespondNotFound(w, msgRateNotFound)

	case errors.Is(err, tariffs.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
