package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	checkAvailability "github.com/vialibre/dispatch-service/internal/usecase/check_availability"
)

const (
	msgInvalidQuery = "parámetros de consulta inválidos"
	msgInvalidTime  = "formato de fecha inválido, se espera RFC 3339"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?staffId=&resourceId=&start=&end=&excludeAppointmentId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &checkAvailability.Request{}

	var err error
	if req.StaffID, err = parseOptionalID(query.Get("staffId")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if req.ResourceID, err = parseOptionalID(query.Get("resourceId")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	if req.ExcludeAppointmentID, err = parseOptionalID(query.Get("excludeAppointmentId")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	if req.Start, err = time.Parse(time.RFC3339, query.Get("start")); err != nil {
		h.logger.Warn("GET /availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	if req.End, err = time.Parse(time.RFC3339, query.Get("end")); err != nil {
		h.logger.Warn("GET /availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /availability - Check failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - available=%v staff=%v resource=%v",
		result.Available, req.StaffID, req.ResourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseOptionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
