package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	growth, ok := Get(KeyGrowth)
	require.True(t, ok)
	assert.Equal(t, "Growth", growth.Label)
	assert.Equal(t, 1500.0, growth.MinPrice)
	assert.Equal(t, 2500.0, growth.MaxPrice)
	assert.Equal(t, "$100/mo", growth.MonthlyDisplay)
	assert.Equal(t, RevShareSplit, growth.RevShare)

	_, ok = Get("enterprise")
	assert.False(t, ok)

	_, ok = Get("")
	assert.False(t, ok)
}

func TestCatalogIsClosed(t *testing.T) {
	all := All()
	require.Len(t, all, 4)

	keys := make([]string, 0, len(all))
	for _, d := range all {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{KeySelfManaged, KeyGrowth, KeyAuthority, KeyCustom}, keys)
}

func TestAllReturnsACopy(t *testing.T) {
	all := All()
	all[0].Label = "mutated"

	fresh, ok := Get(KeySelfManaged)
	require.True(t, ok)
	assert.Equal(t, "Self-Managed", fresh.Label)
}

func TestSetupBoundsMirrorPrices(t *testing.T) {
	for _, d := range All() {
		if d.Key == KeyCustom {
			assert.Zero(t, d.SetupMinCents)
			assert.Zero(t, d.SetupMaxCents)
			continue
		}
		assert.Equal(t, int64(d.MinPrice*100), d.SetupMinCents, d.Key)
		assert.Equal(t, int64(d.MaxPrice*100), d.SetupMaxCents, d.Key)
	}
}

func TestCustomTierHasNoPriceBounds(t *testing.T) {
	custom, ok := Get(KeyCustom)
	require.True(t, ok)
	assert.Zero(t, custom.MinPrice)
	assert.Zero(t, custom.MaxPrice)
	assert.Equal(t, "Custom Price", custom.PriceRange)
	assert.Equal(t, "TBD", custom.MonthlyDisplay)
	assert.Equal(t, RevShareCustom, custom.RevShare)
}
