package get_available_slots

import (
	"time"

	"github.com/vialibre/dispatch-service/internal/domain"
	getAvailableSlots "github.com/vialibre/dispatch-service/internal/usecase/get_available_slots"
)

// OpenSlotsResponse HTTP response model
type OpenSlotsResponse struct {
	Date      string     `json:"date"`
	ServiceID int64      `json:"serviceId"`
	Slots     []OpenSlot `json:"slots"`
}

// OpenSlot one free window of the day
type OpenSlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *OpenSlotsResponse {
	slots := make([]OpenSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = OpenSlot{
			Start:           slot.Start.String(),
			End:             slot.End.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &OpenSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest builds the usecase request from path and query parameters
func ToUseCaseRequest(serviceID int64, dateStr string, staffID, resourceID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID:  serviceID,
		Date:       date,
		StaffID:    staffID,
		ResourceID: resourceID,
	}, nil
}
