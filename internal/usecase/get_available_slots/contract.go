package get_available_slots

import (
	"context"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// AppointmentRepository appointment storage contract
type AppointmentRepository interface {
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	CompleteOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ServiceCatalog service catalog storage contract
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider clock contract, swapped out in tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
