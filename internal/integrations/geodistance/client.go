package geodistance

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Client computes driving distances between street addresses through the
// Google Maps Distance Matrix API
type Client struct {
	client  *maps.Client
	timeout time.Duration
	log     Logger
}

// NewClient creates a new geodistance client
func NewClient(apiKey string, timeout time.Duration, log Logger) (*Client, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create maps client: %v", ErrInternal, err)
	}

	return &Client{
		client:  client,
		timeout: timeout,
		log:     log,
	}, nil
}

// Route estimates driving distance and duration between two addresses.
// Addresses are passed to the API as free-form text, the way operators
// type them into the admin panel.
func (c *Client) Route(ctx context.Context, origin, destination string) (*RouteEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := c.client.DistanceMatrix(ctx, req)
	if err != nil {
		c.log.Error("DistanceMatrix request failed: origin=%q destination=%q: %v", origin, destination, err)
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty distance matrix response", ErrRouteUnavailable)
	}

	element := resp.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
	case "NOT_FOUND":
		return nil, fmt.Errorf("%w: origin=%q destination=%q", ErrAddressNotFound, origin, destination)
	default:
		return nil, fmt.Errorf("%w: element status %s", ErrRouteUnavailable, element.Status)
	}

	estimate := &RouteEstimate{
		DistanceKm:      float64(element.Distance.Meters) / 1000.0,
		DurationMinutes: int(element.Duration.Minutes()),
	}

	c.log.Info("Route estimated: origin=%q destination=%q distance_km=%.2f duration_min=%d",
		origin, destination, estimate.DistanceKm, estimate.DurationMinutes)

	return estimate, nil
}

// Geocode resolves an address to coordinates. Used by the admin panel to
// validate zone reference addresses before saving.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	results, err := c.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}

	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
