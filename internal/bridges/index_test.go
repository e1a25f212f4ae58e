package bridges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roadfix/internal/model"
)

func TestNewIndex(t *testing.T) {
	wps := append(evenRoad("N1"), evenRoad("n2")...)
	idx := NewIndex(wps)

	assert.Equal(t, 2, idx.Roads())
	assert.True(t, idx.Known("N1"))
	assert.True(t, idx.Known("N2"))
	assert.False(t, idx.Known("N3"))

	r, ok := idx.Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, 100.0, r.MaxChainage)
	assert.Equal(t, 11, r.Stations.Len())
}

func TestNewIndex_SortsStations(t *testing.T) {
	wps := evenRoad("N1")
	wps[0], wps[10] = wps[10], wps[0]

	r, ok := NewIndex(wps).Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, 0.0, r.Stations.At(0).Chainage)
	assert.Equal(t, 100.0, r.Stations.At(10).Chainage)
}

func TestNewIndex_KeepsDuplicateChainage(t *testing.T) {
	wps := evenRoad("N1")
	wps = append(wps, model.Waypoint{Road: "N1", Chainage: 50, Lat: 7, Lon: 0})

	r, ok := NewIndex(wps).Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, 12, r.Stations.Len())
}

func TestNewIndex_MissingChainage(t *testing.T) {
	wps := evenRoad("N1")
	wps = append(wps, model.Waypoint{Road: "N1", Chainage: math.NaN(), Lat: 1, Lon: 1})
	wps = append(wps, model.Waypoint{Road: "Z9", Chainage: math.NaN(), Lat: 1, Lon: 1})
	idx := NewIndex(wps)

	r, ok := idx.Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, 100.0, r.MaxChainage)
	assert.Equal(t, 11, r.Stations.Len())

	// Known for filtering but unusable for interpolation.
	assert.True(t, idx.Known("Z9"))
	_, ok = idx.Lookup("Z9")
	assert.False(t, ok)
}

func TestNewIndex_MaxChainageAfterLeadingMissing(t *testing.T) {
	idx := NewIndex([]model.Waypoint{
		{Road: "R1", Chainage: math.NaN()},
		{Road: "R1", Chainage: 4, Lat: 1},
		{Road: "R1", Chainage: 2, Lat: 1},
	})
	r, ok := idx.Lookup("R1")
	require.True(t, ok)
	assert.Equal(t, 4.0, r.MaxChainage)
}

func TestIndex_Match(t *testing.T) {
	wps := evenRoad("N1")
	wps = append(wps,
		model.Waypoint{Road: "N1", LRP: "lrp050", Chainage: 50, Lat: 9, Lon: 9},
		model.Waypoint{Road: "N1", LRP: "LRPX", Chainage: 60, Lat: math.NaN(), Lon: 1},
		model.Waypoint{Road: "N1", LRP: "", Chainage: 70, Lat: 1, Lon: 1},
	)
	idx := NewIndex(wps)

	lat, lon, ok := idx.Match("N1", "LRP050")
	require.True(t, ok)
	assert.Equal(t, 5.0, lat, "first waypoint with the key wins")
	assert.Equal(t, 0.0, lon)

	_, _, ok = idx.Match("N1", "LRPX")
	assert.False(t, ok, "missing coordinates never match")

	_, _, ok = idx.Match("N1", "")
	assert.False(t, ok, "empty LRP never matches")

	_, _, ok = idx.Match("N2", "LRP050")
	assert.False(t, ok)
}

func TestIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)
	assert.Equal(t, 0, idx.Roads())
	assert.False(t, idx.Known(""))
}
