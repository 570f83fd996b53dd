package cancel_appointment

import (
	"context"

	"github.com/vialibre/dispatch-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
