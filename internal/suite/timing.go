package suite

import (
	"math"
	"slices"
	"time"
)

// Timing summarises how long the converter spent on the cases of one suite.
type Timing struct {
	Cases int           `json:"cases"`
	Total time.Duration `json:"total_ns"`
	Min   time.Duration `json:"min_ns"`
	Max   time.Duration `json:"max_ns"`
	Mean  time.Duration `json:"mean_ns"`
	P50   time.Duration `json:"p50_ns"`
	P95   time.Duration `json:"p95_ns"`
}

func summarize(results []CaseResult) Timing {
	if len(results) == 0 {
		return Timing{}
	}

	ds := make([]time.Duration, len(results))
	var total time.Duration
	for i, r := range results {
		ds[i] = r.Duration
		total += r.Duration
	}
	slices.Sort(ds)

	return Timing{
		Cases: len(ds),
		Total: total,
		Min:   ds[0],
		Max:   ds[len(ds)-1],
		Mean:  total / time.Duration(len(ds)),
		P50:   quantile(ds, 0.50),
		P95:   quantile(ds, 0.95),
	}
}

// quantile interpolates linearly between the closest ranks of a sorted sample.
func quantile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q * float64(len(sorted)-1)
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	w := rank - float64(lo)
	return time.Duration(math.Round(float64(sorted[lo])*(1-w) + float64(sorted[lo+1])*w))
}
