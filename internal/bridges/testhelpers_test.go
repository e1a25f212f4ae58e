package bridges

import (
	"fmt"
	"math"

	"github.com/sells-group/roadfix/internal/model"
)

// evenRoad returns waypoints at chainage 0..100 step 10 with lat = chainage/10, lon = 0.
func evenRoad(road string) []model.Waypoint {
	var wps []model.Waypoint
	for c := 0; c <= 100; c += 10 {
		wps = append(wps, model.Waypoint{
			Road:     road,
			LRP:      fmt.Sprintf("LRP%03d", c),
			Chainage: float64(c),
			Lat:      float64(c) / 10,
			Lon:      0,
			Row:      len(wps),
		})
	}
	return wps
}

func bridge(road, lrp string, km float64) model.Bridge {
	return model.Bridge{
		Road:    road,
		LRPName: lrp,
		KM:      km,
		Lat:     math.NaN(),
		Lon:     math.NaN(),
		Fields:  map[string]string{"road": road, "LRPName": lrp},
	}
}
