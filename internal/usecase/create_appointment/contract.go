package create_appointment

import (
	"context"
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
	"github.com/vialibre/dispatch-service/internal/usecase/check_availability"
)

// AppointmentRepository appointment storage contract
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	CompleteOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ServiceCatalog service catalog storage contract
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// QuoteCalculator quote usecase contract
type QuoteCalculator interface {
	Execute(ctx context.Context, req *calculate_quote.Request) (*calculate_quote.Response, error)
}

// AvailabilityChecker availability usecase contract
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// TransactionManager transaction contract
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
