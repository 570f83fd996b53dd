package manage_staff

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
	msgInvalidStaffID     = "ID de personal inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidQuery       = "parámetros de consulta inválidos"
	msgStaffNotFound      = "miembro del personal no encontrado"
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

// Create POST /api/v1/staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /staff", err)
		return
	}

	h.logger.Info("POST /staff - Staff member created: staff_id=%d, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/staff/{staffId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffID(w, r, "GET /staff/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetStaff(r.Context(), staffID)
	if err != nil {
		h.respondError(w, "GET /staff/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/staff
// Query params: onlyActive
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := false
	if raw := r.URL.Query().Get("onlyActive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /staff - Invalid onlyActive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		onlyActive = parsed
	}

	result, err := h.service.ListStaff(r.Context(), onlyActive)
	if err != nil {
		h.respondError(w, "GET /staff", err)
		return
	}

	h.logger.Info("GET /staff - Staff listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/staff/{staffId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffID(w, r, "PUT /staff/{id}")
	if !ok {
		return
	}

	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		h.respondError(w, "PUT /staff/{id}", err)
		return
	}

	h.logger.Info("PUT /staff/{id} - Staff member updated: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/staff/{staffId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.staffID(w, r, "DELETE /staff/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteStaff(r.Context(), staffID); err != nil {
		h.respondError(w, "DELETE /staff/{id}", err)
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff member deleted: staff_id=%d", staffID)
	handlers.RespondNoContent(w)
}

func (h *Handler) staffID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid staff ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return 0, false
	}
	return staffID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, directory.ErrStaffNotFound):
		h.logger.Warn("%s - Staff member not found", op)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
