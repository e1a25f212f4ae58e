// Package geo provides great-circle distance and chainage interpolation
// over surveyed road station tables.
package geo

import (
	"math"

	"github.com/rotisserie/eris"
)

// EarthRadiusKM is the mean Earth radius used by Haversine.
const EarthRadiusKM = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees. Missing (NaN) inputs yield NaN.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	// atan2 keeps the result finite when rounding pushes a slightly past 1.
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(math.Max(0, 1-a)))

	return EarthRadiusKM * c
}

// HaversineMany applies Haversine elementwise over equal-length coordinate
// slices.
func HaversineMany(lat1, lon1, lat2, lon2 []float64) ([]float64, error) {
	n := len(lat1)
	if len(lon1) != n || len(lat2) != n || len(lon2) != n {
		return nil, eris.Errorf("geo: haversine length mismatch (%d, %d, %d, %d)", len(lat1), len(lon1), len(lat2), len(lon2))
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = Haversine(lat1[i], lon1[i], lat2[i], lon2[i])
	}
	return out, nil
}
