package manage_zones

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
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgZoneNotFound       = "zona no encontrada"
	msgSlugTaken          = "el slug ya está en uso por otra zona"
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

// Create POST /api/v1/zones
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ZoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /zones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateZone(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /zones", err)
		return
	}

	h.logger.Info("POST /zones - Zone created: zone_id=%d, slug=%q", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/zones/{zoneId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.zoneID(w, r, "GET /zones/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetZone(r.Context(), zoneID)
	if err != nil {
		h.respondError(w, "GET /zones/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/zones
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListZones(r.Context())
	if err != nil {
		h.respondError(w, "GET /zones", err)
		return
	}

	h.logger.Info("GET /zones - Zones listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/zones/{zoneId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.zoneID(w, r, "PUT /zones/{id}")
	if !ok {
		return
	}

	var req models.ZoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /zones/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateZone(r.Context(), zoneID, &req)
	if err != nil {
		h.respondError(w, "PUT /zones/{id}", err)
		return
	}

	h.logger.Info("PUT /zones/{id} - Zone updated: zone_id=%d", zoneID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/zones/{zoneId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := h.zoneID(w, r, "DELETE /zones/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteZone(r.Context(), zoneID); err != nil {
		h.respondError(w, "DELETE /zones/{id}", err)
		return
	}

	h.logger.Info("DELETE /zones/{id} - Zone deleted: zone_id=%d", zoneID)
	handlers.RespondNoContent(w)
}

func (h *Handler) zoneID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	zoneID, err := strconv.ParseInt(mux.Vars(r)["zoneId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid zone ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidZoneID)
		return 0, false
	}
	return zoneID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, tariffs.ErrZoneNotFound):
		h.logger.Warn("%s - Zone not found", op)
		handlers.RespondNotFound(w, msgZoneNotFound)

	case errors.Is(err, tariffs.ErrSlugTaken):
		h.logger.Warn("%s - Slug already taken", op)
		handlers.RespondError(w, http.StatusConflict, msgSlugTaken)

	case errors.Is(err, tariffs.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
