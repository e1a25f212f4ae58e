package export

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/model"
)

// RoadsFeatureCollection builds one LineString feature per road.
func RoadsFeatureCollection(wps []model.Waypoint) *geojson.FeatureCollection {
	lines := RoadLines(wps)
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(lines))}
	for _, l := range lines {
		flat := make([]float64, 0, 2*len(l.Coords))
		for _, c := range l.Coords {
			flat = append(flat, c[0], c[1])
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       l.Road,
			Geometry: geom.NewLineStringFlat(geom.XY, flat),
			Properties: map[string]interface{}{
				"road":      l.Road,
				"waypoints": l.Waypoints,
				"length_km": l.LengthKM(),
			},
		})
	}
	return fc
}

// BridgesFeatureCollection builds one Point feature per located bridge.
func BridgesFeatureCollection(bs []model.RepairedBridge) *geojson.FeatureCollection {
	placed := locatedBridges(bs)
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(placed))}
	for _, b := range placed {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.Itoa(b.Row),
			Geometry: geom.NewPointFlat(geom.XY, []float64{b.Fix.Lon, b.Fix.Lat}),
			Properties: map[string]interface{}{
				"road":         b.Road,
				"LRPName":      b.LRPName,
				"name":         b.Fields["name"],
				"EstimatedLoc": string(b.Fix.Method),
			},
		})
	}
	return fc
}

// WriteRoadsGeoJSON writes the cleaned network as a GeoJSON file.
func WriteRoadsGeoJSON(path string, wps []model.Waypoint) error {
	fc := RoadsFeatureCollection(wps)
	return writeGeoJSON(path, fc)
}

// WriteBridgesGeoJSON writes repaired bridge positions as a GeoJSON file.
func WriteBridgesGeoJSON(path string, bs []model.RepairedBridge) error {
	fc := BridgesFeatureCollection(bs)
	return writeGeoJSON(path, fc)
}

func writeGeoJSON(path string, fc *geojson.FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrap(err, "export: encode geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	zap.L().Info("export: geojson written",
		zap.String("path", path),
		zap.Int("features", len(fc.Features)),
	)
	return nil
}
