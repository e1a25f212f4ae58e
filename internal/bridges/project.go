package bridges

import (
	"github.com/sells-group/roadfix/internal/model"
	"github.com/sells-group/roadfix/internal/tabular"
)

// EstimatedLocColumn carries the fix method in the output schema.
const EstimatedLocColumn = "EstimatedLoc"

// OutputColumns is the fixed bridge schema expected by the downstream
// simulation, in order.
var OutputColumns = []string{
	"road", "km", "type", "LRPName", "name", "length", "condition", "structureNr",
	"roadName", "chainage", "width", "constructionYear", "spans", "zone",
	"circle", "division", "sub-division", "lat", "lon", EstimatedLocColumn,
}

// NumericColumns are coerced to numbers on output.
var NumericColumns = []string{"lat", "lon", "km", "length"}

// Project renders repaired bridges in the output schema. Source fields are
// forwarded, lat/lon are replaced by the repaired location and numeric
// columns are coerced. Columns the source lacks stay empty.
func Project(repaired []model.RepairedBridge) *tabular.Table {
	numeric := make(map[string]bool, len(NumericColumns))
	for _, c := range NumericColumns {
		numeric[c] = true
	}

	t := &tabular.Table{
		Header: append([]string(nil), OutputColumns...),
		Rows:   make([][]string, 0, len(repaired)),
	}
	for _, rb := range repaired {
		row := make([]string, len(OutputColumns))
		for i, col := range OutputColumns {
			switch col {
			case "lat":
				row[i] = tabular.FormatNumber(rb.Fix.Lat)
			case "lon":
				row[i] = tabular.FormatNumber(rb.Fix.Lon)
			case EstimatedLocColumn:
				row[i] = string(rb.Fix.Method)
			default:
				v := rb.Fields[col]
				if numeric[col] {
					v = tabular.FormatNumber(tabular.ParseNumber(v))
				}
				row[i] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
