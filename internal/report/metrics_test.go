package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roadfix/internal/model"
)

func TestMetrics_Observe(t *testing.T) {
	s := New(time.Unix(1700000000, 0), Inputs{}, sampleResult())
	m := NewMetrics()
	m.Observe(s)

	assert.InDelta(t, 4.0, testutil.ToFloat64(m.Rows.WithLabelValues("roads")), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.Rows.WithLabelValues("bridges")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.Duplicates.WithLabelValues("roads")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Outliers), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Unlocated), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Dropped), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Fixes.WithLabelValues(string(model.FixMatchedLRP))), 0)
	assert.InDelta(t, 0.02, testutil.ToFloat64(m.Phase.WithLabelValues("clean_roads")), 1e-9)
	assert.InDelta(t, 1700000000.0, testutil.ToFloat64(m.LastRun), 0)
}

func TestMetrics_RoadsOnly(t *testing.T) {
	res := sampleResult()
	res.Bridges = nil
	m := NewMetrics()
	m.Observe(New(time.Now(), Inputs{}, res))

	assert.Equal(t, 1, testutil.CollectAndCount(m.Rows))
	assert.Equal(t, 0, testutil.CollectAndCount(m.Fixes))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Observe(New(time.Now(), Inputs{}, sampleResult()))

	path := filepath.Join(t.TempDir(), "roadfix.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `roadfix_rows{table="roads"} 4`)
	assert.Contains(t, string(data), "# TYPE roadfix_road_outliers gauge")
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "roadfix.prom"))
	assert.Error(t, err)
}
