package appointments

import (
	"context"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
)

// AppointmentRepository appointment storage contract
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	CompleteOverdue(ctx context.Context, now time.Time) (int64, error)
}

// TimeProvider clock contract, swapped out in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
