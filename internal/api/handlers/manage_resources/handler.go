package manage_resources

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	"github.com/vialibre/dispatch-service/internal/service/directory"
	"github.com/vialibre/dispatch-service/internal/service/directory/models"
)

const (
	msgInvalidResourceID  = "ID de recurso inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidQuery       = "parámetros de consulta inválidos"
	msgResourceNotFound   = "recurso no encontrado"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/resources
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateResource(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /resources", err)
		return
	}

	h.logger.Info("POST /resources - Resource created: resource_id=%d, kind=%s", result.ID, result.Kind)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/resources/{resourceId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resourceID, ok := h.resourceID(w, r, "GET /resources/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetResource(r.Context(), resourceID)
	if err != nil {
		h.respondError(w, "GET /resources/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/resources
// Query params: onlyActive
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := false
	if raw := r.URL.Query().Get("onlyActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /resources - Invalid onlyActive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		onlyActive = parsed
	}

	result, err := h.service.ListResources(r.Context(), onlyActive)
	if err != nil {
		h.respondError(w, "GET /resources", err)
		return
	}

	h.logger.Info("GET /resources - Resources listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/resources/{resourceId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	resourceID, ok := h.resourceID(w, r, "PUT /resources/{id}")
	if !ok {
		return
	}

	var req models.ResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateResource(r.Context(), resourceID, &req)
	if err != nil {
		h.respondError(w, "PUT /resources/{id}", err)
		return
	}

	h.logger.Info("PUT /resources/{id} - Resource updated: resource_id=%d", resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/resources/{resourceId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	resourceID, ok := h.resourceID(w, r, "DELETE /resources/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteResource(r.Context(), resourceID); err != nil {
		h.respondError(w, "DELETE /resources/{id}", err)
		return
	}

	h.logger.Info("DELETE /resources/{id} - Resource deleted: resource_id=%d", resourceID)
	handlers.RespondNoContent(w)
}

func (h *Handler) resourceID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	resourceID, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid resource ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return 0, false
	}
	return resourceID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrResourceNotFound):
		h.logger.Warn("%s - Resource not found", op)
		handlers.RespondNotFound(w, msgResourceNotFound)

	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
