package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func results(ds ...time.Duration) []CaseResult {
	out := make([]CaseResult, len(ds))
	for i, d := range ds {
		out[i] = CaseResult{Duration: d}
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Timing{}, summarize(nil))
}

func TestSummarize_Single(t *testing.T) {
	tm := summarize(results(3 * time.Microsecond))

	assert.Equal(t, 1, tm.Cases)
	assert.Equal(t, 3*time.Microsecond, tm.Min)
	assert.Equal(t, 3*time.Microsecond, tm.Max)
	assert.Equal(t, 3*time.Microsecond, tm.P50)
	assert.Equal(t, 3*time.Microsecond, tm.P95)
}

func TestSummarize_Unordered(t *testing.T) {
	tm := summarize(results(50, 10, 40, 20, 30))

	assert.Equal(t, 5, tm.Cases)
	assert.Equal(t, time.Duration(150), tm.Total)
	assert.Equal(t, time.Duration(10), tm.Min)
	assert.Equal(t, time.Duration(50), tm.Max)
	assert.Equal(t, time.Duration(30), tm.Mean)
	assert.Equal(t, time.Duration(30), tm.P50)
	assert.Equal(t, time.Duration(48), tm.P95)
}
