package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/vialibre/dispatch-service/internal/service/appointments/models"
)

// ToServiceRequest parses the calendar filter from query parameters.
// Dates accept RFC 3339; id filters must be numeric.
func ToServiceRequest(query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	var err error
	if req.From, err = parseOptionalTime(query.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = parseOptionalTime(query.Get("to")); err != nil {
		return nil, err
	}
	if req.CustomerID, err = parseOptionalID(query.Get("customerId")); err != nil {
		return nil, err
	}
	if req.StaffID, err = parseOptionalID(query.Get("staffId")); err != nil {
		return nil, err
	}
	if req.ResourceID, err = parseOptionalID(query.Get("resourceId")); err != nil {
		return nil, err
	}
	if req.ServiceID, err = parseOptionalID(query.Get("serviceId")); err != nil {
		return nil, err
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
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
