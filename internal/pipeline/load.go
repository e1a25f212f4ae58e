package pipeline

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/roadfix/internal/model"
	"github.com/sells-group/roadfix/internal/tabular"
)

// Source column names.
const (
	ColRoad      = "road"
	ColChainage  = "chainage"
	ColLat       = "lat"
	ColLon       = "lon"
	ColLRP       = "lrp"
	ColLRPName   = "LRPName"
	ColType      = "type"
	ColKM        = "km"
	ColGap       = "gap"
	ColDeviation = "deviation_km"
)

// Waypoints reads road waypoints from a roads table. Numeric cells that do
// not parse become missing values.
func Waypoints(t *tabular.Table) ([]model.Waypoint, error) {
	for _, col := range []string{ColRoad, ColChainage, ColLat, ColLon} {
		if !t.HasCol(col) {
			return nil, eris.Errorf("pipeline: roads table missing column %q", col)
		}
	}

	road, ch, lat, lon := t.Col(ColRoad), t.Col(ColChainage), t.Col(ColLat), t.Col(ColLon)
	lrp := t.Col(ColLRP)
	if lrp < 0 {
		lrp = t.Col(ColLRPName)
	}
	typ := t.Col(ColType)

	wps := make([]model.Waypoint, len(t.Rows))
	for i, row := range t.Rows {
		wps[i] = model.Waypoint{
			Road:     tabular.Cell(row, road),
			LRP:      tabular.Cell(row, lrp),
			Type:     tabular.Cell(row, typ),
			Chainage: tabular.ParseNumber(tabular.Cell(row, ch)),
			Lat:      tabular.ParseNumber(tabular.Cell(row, lat)),
			Lon:      tabular.ParseNumber(tabular.Cell(row, lon)),
			Row:      i,
		}
	}
	return wps, nil
}

// Bridges reads bridge records from a bridges table. Every source cell is
// kept in Fields for pass-through.
func Bridges(t *tabular.Table) ([]model.Bridge, error) {
	for _, col := range []string{ColRoad, ColKM} {
		if !t.HasCol(col) {
			return nil, eris.Errorf("pipeline: bridges table missing column %q", col)
		}
	}

	road, km, lrp := t.Col(ColRoad), t.Col(ColKM), t.Col(ColLRPName)
	lat, lon := t.Col(ColLat), t.Col(ColLon)

	out := make([]model.Bridge, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = model.Bridge{
			Road:    tabular.Cell(row, road),
			LRPName: tabular.Cell(row, lrp),
			KM:      tabular.ParseNumber(tabular.Cell(row, km)),
			Lat:     tabular.ParseNumber(tabular.Cell(row, lat)),
			Lon:     tabular.ParseNumber(tabular.Cell(row, lon)),
			Fields:  t.Record(row),
			Row:     i,
		}
	}
	return out, nil
}
