package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	"github.com/vialibre/dispatch-service/internal/service/catalog"
	"github.com/vialibre/dispatch-service/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "ID de servicio inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidQuery       = "parámetros de consulta inválidos"
	msgServiceNotFound    = "servicio no encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /services", err)
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/services/{serviceId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "GET /services/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		h.respondError(w, "GET /services/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/services
// Query params: onlyActive
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := false
	if raw := r.URL.Query().Get("onlyActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /services - Invalid onlyActive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		onlyActive = parsed
	}

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.respondError(w, "GET /services", err)
		return
	}

	h.logger.Info("GET /services - Services listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/services/{serviceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "PUT /services/{id}")
	if !ok {
		return
	}

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		h.respondError(w, "PUT /services/{id}", err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/services/{serviceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "DELETE /services/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), serviceID); err != nil {
		h.respondError(w, "DELETE /services/{id}", err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", serviceID)
	handlers.RespondNoContent(w)
}

func (h *Handler) serviceID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return serviceID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found", op)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
