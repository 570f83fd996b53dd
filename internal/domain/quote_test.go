package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSnapshotRoundTrip(t *testing.T) {
	q := &Quote{
		DistanceKm:      12.5,
		DurationMinutes: 35,
		TripType:        TripSencillo,
		EquipmentType:   EquipmentRampa,
		Pricing: PricingBreakdown{
			BasePrice: 30000,
			Surcharges: []Surcharge{
				{Name: SurchargeNight, Type: "time", Amount: 35000},
			},
			TotalSurcharge: 35000,
			TotalPrice:     65000,
		},
	}

	raw, err := q.Snapshot()
	require.NoError(t, err)

	restored, err := QuoteFromSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, q, restored)
	assert.Equal(t, 65000.0, restored.Pricing.TotalPrice)
}
