package model

// FixMethod tags how a bridge's coordinates were repaired.
type FixMethod string

const (
	FixMatchedLRP   FixMethod = "Fixed: Matched on LRP Name"
	FixRoadMissing  FixMethod = "Error: Road data missing"
	FixInterpolated FixMethod = "Fixed: Interpolated by Chainage"
	FixSnappedSmall FixMethod = "Fixed: Snapped to End (Small deviation)"
	FixTypoDiv10    FixMethod = "Fixed: Typo detected (Chainage / 10)"
	FixSnappedShort FixMethod = "Fixed: Snapped to End (Road too short)"
)

// FixMethods lists every fix method in cascade order.
var FixMethods = []FixMethod{
	FixMatchedLRP,
	FixRoadMissing,
	FixInterpolated,
	FixSnappedSmall,
	FixTypoDiv10,
	FixSnappedShort,
}

// IsError reports whether the method leaves the bridge unrepaired.
func (m FixMethod) IsError() bool { return m == FixRoadMissing }

// Bridge is one bridge survey record. KM is the reported chainage; Lat/Lon
// are the surveyed coordinates. Any of them may be missing.
type Bridge struct {
	Road    string
	LRPName string
	KM      float64
	Lat     float64
	Lon     float64

	// Fields holds every source cell by column name. Descriptive fields are
	// forwarded from here untouched.
	Fields map[string]string

	// Row is the bridge's index in the source table.
	Row int
}

// RoadKey returns the normalized road id.
func (b Bridge) RoadKey() string { return NormalizeKey(b.Road) }

// LRPKey returns the normalized LRP code.
func (b Bridge) LRPKey() string { return NormalizeKey(b.LRPName) }

// Fix is the outcome of repairing one bridge.
type Fix struct {
	Lat    float64
	Lon    float64
	Method FixMethod
}

// RepairedBridge is a bridge together with its repaired location.
type RepairedBridge struct {
	Bridge
	Fix Fix
}
