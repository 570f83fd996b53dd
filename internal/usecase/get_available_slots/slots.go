package get_available_slots

import (
	"fmt"

	"github.com/vialibre/dispatch-service/internal/domain"
	"github.com/vialibre/dispatch-service/pkg/types"
)

// enumerateOpenSlots scans the working day in fixed steps and keeps every
// candidate window that, once padded by the buffer on both sides, does not
// overlap any existing appointment padded the same way. The buffer absorbs
// pick-up and drop-off travel around each trip.
//
// All arithmetic runs in minutes since midnight; appointments on other
// dates must be filtered out by the caller.
func enumerateOpenSlots(
	dayStart, dayEnd types.TimeString,
	stepMinutes, bufferMinutes, durationMinutes int,
	appointments []*domain.Appointment,
) ([]domain.OpenSlot, error) {
	startMin, err := dayStart.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := dayEnd.Minutes()
	if err != nil {
		return nil, err
	}

	type interval struct{ start, end int }
	busy := make([]interval, 0, len(appointments))
	for _, appt := range appointments {
		apptStart := appt.ScheduledAt.Hour()*60 + appt.ScheduledAt.Minute()
		busy = append(busy, interval{
			start: apptStart - bufferMinutes,
			end:   apptStart + appt.EstimatedDuration + bufferMinutes,
		})
	}

	slots := make([]domain.OpenSlot, 0)
	for candidate := startMin; candidate+durationMinutes <= endMin; candidate += stepMinutes {
		paddedStart := candidate - bufferMinutes
		paddedEnd := candidate + durationMinutes + bufferMinutes

		free := true
		for _, b := range busy {
			if paddedStart < b.end && b.start < paddedEnd {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		start, err := types.NewTimeStringFromString(fmt.Sprintf("%02d:%02d", candidate/60, candidate%60))
		if err != nil {
			return nil, err
		}
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.OpenSlot{
			Start:           start,
			End:             end,
			DurationMinutes: durationMinutes,
		})
	}

	return slots, nil
}
