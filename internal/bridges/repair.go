package bridges

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/roadfix/internal/model"
)

// Stats counts repaired bridges per fix method.
type Stats map[model.FixMethod]int

// StatEntry is one fix method's count.
type StatEntry struct {
	Method model.FixMethod `yaml:"method" json:"method"`
	Count  int             `yaml:"count" json:"count"`
}

// Sorted returns the counts largest first, ties in cascade order.
func (s Stats) Sorted() []StatEntry {
	rank := make(map[model.FixMethod]int, len(model.FixMethods))
	for i, m := range model.FixMethods {
		rank[m] = i
	}

	out := make([]StatEntry, 0, len(s))
	for m, n := range s {
		out = append(out, StatEntry{Method: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return rank[out[i].Method] < rank[out[j].Method]
	})
	return out
}

// Total returns the number of bridges counted.
func (s Stats) Total() int {
	var n int
	for _, c := range s {
		n += c
	}
	return n
}

// Result is the outcome of a bridge repair pass.
type Result struct {
	Bridges []model.RepairedBridge
	Dropped int // bridges on roads missing from the cleaned network
	Stats   Stats
}

// Repair relocates every bridge whose road is in the index. Bridges on
// unknown roads are left out of the result; the rest keep input order.
func Repair(bridges []model.Bridge, idx *Index) *Result {
	res := &Result{
		Bridges: make([]model.RepairedBridge, 0, len(bridges)),
		Stats:   make(Stats),
	}

	for _, b := range bridges {
		if !idx.Known(b.RoadKey()) {
			res.Dropped++
			continue
		}
		fix := Locate(b, idx)
		res.Stats[fix.Method]++
		res.Bridges = append(res.Bridges, model.RepairedBridge{Bridge: b, Fix: fix})
	}

	log := zap.L().With(zap.String("stage", "bridges"))
	log.Info("bridges: repaired",
		zap.Int("bridges", len(res.Bridges)),
		zap.Int("dropped_unknown_road", res.Dropped),
	)
	for _, e := range res.Stats.Sorted() {
		log.Info("bridges: fix method", zap.String("method", string(e.Method)), zap.Int("count", e.Count))
	}
	return res
}
