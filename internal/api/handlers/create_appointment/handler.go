package create_appointment

import (
	"errors"
	"net/http"

	"github.com/vialibre/dispatch-service/internal/api/handlers"
	createAppointment "github.com/vialibre/dispatch-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgTimeSlotConflict    = "el horario solicitado ya está ocupado"
	msgServiceNotFound     = "servicio no encontrado"
	msgDistanceUnavailable = "no se pudo calcular la distancia del recorrido"
	msgInvalidDate         = "la fecha del turno no puede estar en el pasado"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createAppointment.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: scheduled_at=%s", req.ScheduledAt)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%v", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrTimeSlotConflict):
			h.logger.Warn("POST /appointments - Time slot conflict: customer_id=%d, scheduled_at=%s",
				req.CustomerID, req.ScheduledAt)
			handlers.RespondError(w, http.StatusConflict, msgTimeSlotConflict)

		case errors.Is(err, createAppointment.ErrDistanceUnavailable):
			h.logger.Warn("POST /appointments - Distance unavailable: origin=%q destination=%q",
				req.OriginAddress, req.DestinationAddress)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDistanceUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v",
				req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d, total=%.0f",
		result.Appointment.ID, req.CustomerID, result.Appointment.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
