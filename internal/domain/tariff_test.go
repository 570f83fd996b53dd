package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/pkg/ptr"
)

func TestRateCoversDistance(t *testing.T) {
	bounded := &Rate{MinKm: ptr.Ptr(5.0), MaxKm: ptr.Ptr(15.0)}
	assert.True(t, bounded.CoversDistance(5))
	assert.True(t, bounded.CoversDistance(10))
	assert.True(t, bounded.CoversDistance(15))
	assert.False(t, bounded.CoversDistance(4.9))
	assert.False(t, bounded.CoversDistance(15.1))

	openEnded := &Rate{MinKm: ptr.Ptr(20.0)}
	assert.True(t, openEnded.CoversDistance(100))
	assert.False(t, openEnded.CoversDistance(10))

	byDestination := &Rate{DestinationName: ptr.Ptr("Aeropuerto JMC")}
	assert.True(t, byDestination.CoversDistance(3))
	assert.True(t, byDestination.CoversDistance(60))
}

func TestTariffRuleIsGeneral(t *testing.T) {
	assert.True(t, (&TariffRule{}).IsGeneral())
	assert.False(t, (&TariffRule{ZoneID: ptr.Ptr(int64(1))}).IsGeneral())
}

func TestTariffRuleAppliesToService(t *testing.T) {
	anyService := &TariffRule{}
	assert.True(t, anyService.AppliesToService(nil))
	assert.True(t, anyService.AppliesToService(ptr.Ptr(int64(7))))

	scoped := &TariffRule{ServiceID: ptr.Ptr(int64(7))}
	assert.False(t, scoped.AppliesToService(nil))
	assert.False(t, scoped.AppliesToService(ptr.Ptr(int64(8))))
	assert.True(t, scoped.AppliesToService(ptr.Ptr(int64(7))))
}

func TestTierFor(t *testing.T) {
	rule := &TariffRule{Tiers: []DistanceTier{
		{MinKm: 0, MaxKm: ptr.Ptr(10.0), Price: 30000},
		{MinKm: 10, MaxKm: ptr.Ptr(25.0), Price: 45000},
		{MinKm: 25, MaxKm: nil, Price: 60000},
	}}

	tier := rule.TierFor(5)
	require.NotNil(t, tier)
	assert.Equal(t, 30000.0, tier.Price)

	// Overlapping boundary goes to the first tier in order
	tier = rule.TierFor(10)
	require.NotNil(t, tier)
	assert.Equal(t, 30000.0, tier.Price)

	tier = rule.TierFor(18)
	require.NotNil(t, tier)
	assert.Equal(t, 45000.0, tier.Price)

	tier = rule.TierFor(80)
	require.NotNil(t, tier)
	assert.Equal(t, 60000.0, tier.Price)

	empty := &TariffRule{}
	assert.Nil(t, empty.TierFor(5))
}
