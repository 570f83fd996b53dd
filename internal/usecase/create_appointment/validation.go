package create_appointment

import (
	"fmt"
	"time"
)

const defaultDurationMinutes = 60

// validateRequest validates the booking request
func validateRequest(req *Request, now time.Time) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}
	if req.OriginAddress == "" || req.DestinationAddress == "" {
		return fmt.Errorf("%w: originAddress and destinationAddress are required", ErrInvalidInput)
	}
	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}
	if req.ScheduledAt.Before(now) {
		return fmt.Errorf("%w: scheduledAt is in the past", ErrInvalidDate)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}
	if req.ResourceID != nil && *req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}
	return nil
}
