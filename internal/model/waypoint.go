package model

// Waypoint is one surveyed location reference point (LRP) on a road.
// Chainage is in kilometers along the road, Lat/Lon in degrees; any of the
// three may be missing.
type Waypoint struct {
	Road     string
	LRP      string
	Type     string
	Chainage float64
	Lat      float64
	Lon      float64

	// Row is the waypoint's index in the source table. Repair never changes
	// it, so output can be rebuilt from the original cells.
	Row int
}

// RoadKey returns the normalized road id.
func (w Waypoint) RoadKey() string { return NormalizeKey(w.Road) }

// LRPKey returns the normalized LRP code.
func (w Waypoint) LRPKey() string { return NormalizeKey(w.LRP) }

// Outlier is a waypoint whose coordinates deviate from the rolling median of
// its neighbourhood by more than the outlier threshold.
type Outlier struct {
	Waypoint
	MedianLat   float64
	MedianLon   float64
	DeviationKM float64
}
