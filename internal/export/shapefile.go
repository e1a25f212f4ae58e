package export

import (
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/model"
)

// dBase field names are limited to 10 characters.
var (
	roadFields = []shp.Field{
		shp.StringField("ROAD", 32),
		shp.NumberField("WAYPOINTS", 10),
		shp.FloatField("LENGTH_KM", 16, 3),
	}
	bridgeFields = []shp.Field{
		shp.StringField("ROAD", 32),
		shp.StringField("LRPNAME", 32),
		shp.StringField("NAME", 80),
		shp.StringField("EST_LOC", 64),
	}
)

// WriteRoadsShapefile writes the cleaned network as a PolyLine shapefile,
// one record per road. path names the .shp file; the .shx and .dbf files
// are written alongside it.
func WriteRoadsShapefile(path string, wps []model.Waypoint) error {
	w, err := create(path, shp.POLYLINE)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.SetFields(roadFields); err != nil {
		return eris.Wrap(err, "export: set road fields")
	}

	lines := RoadLines(wps)
	for _, l := range lines {
		pts := make([]shp.Point, len(l.Coords))
		for i, c := range l.Coords {
			pts[i] = shp.Point{X: c[0], Y: c[1]}
		}
		n := int(w.Write(shp.NewPolyLine([][]shp.Point{pts})))
		if err := writeAttributes(w, n, l.Road, l.Waypoints, l.LengthKM()); err != nil {
			return err
		}
	}

	zap.L().Info("export: shapefile written",
		zap.String("path", path),
		zap.Int("records", len(lines)),
	)
	return nil
}

// WriteBridgesShapefile writes repaired bridge positions as a Point
// shapefile. Bridges without a position are skipped.
func WriteBridgesShapefile(path string, bs []model.RepairedBridge) error {
	w, err := create(path, shp.POINT)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.SetFields(bridgeFields); err != nil {
		return eris.Wrap(err, "export: set bridge fields")
	}

	placed := locatedBridges(bs)
	for _, b := range placed {
		n := int(w.Write(&shp.Point{X: b.Fix.Lon, Y: b.Fix.Lat}))
		if err := writeAttributes(w, n, b.Road, b.LRPName, b.Fields["name"], string(b.Fix.Method)); err != nil {
			return err
		}
	}

	zap.L().Info("export: shapefile written",
		zap.String("path", path),
		zap.Int("records", len(placed)),
	)
	return nil
}

func create(path string, t shp.ShapeType) (*shp.Writer, error) {
	if !strings.EqualFold(filepath.Ext(path), ".shp") {
		return nil, eris.Errorf("export: shapefile path %s must end in .shp", path)
	}
	w, err := shp.Create(path, t)
	if err != nil {
		return nil, eris.Wrapf(err, "export: create shapefile %s", path)
	}
	return w, nil
}

func writeAttributes(w *shp.Writer, row int, values ...interface{}) error {
	for field, v := range values {
		if err := w.WriteAttribute(row, field, v); err != nil {
			return eris.Wrapf(err, "export: write attribute %d of record %d", field, row)
		}
	}
	return nil
}
