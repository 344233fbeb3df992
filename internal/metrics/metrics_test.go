package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/internal/core"
)

func TestResponseTime_UsesFirstSegmentOfEachProcess(t *testing.T) {
	order := []core.Segment{seg(0, 0, 2), seg(1, 2, 4), seg(0, 4, 6), seg(1, 6, 7), seg(0, 7, 8)}

	got, err := ResponseTime(order, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestResponseTime_FCFSExample(t *testing.T) {
	order := []core.Segment{seg(0, 0, 5), seg(1, 5, 8), seg(2, 8, 16)}

	got, err := ResponseTime(order, 3)
	require.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, got, 1e-12)
}

func TestResponseTime_MissingProcessIsInvariantViolation(t *testing.T) {
	_, err := ResponseTime([]core.Segment{seg(0, 0, 5)}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvariant)
	assert.NotErrorIs(t, err, core.ErrInvalidInput)
}

func TestResponseTime_UnknownProcessIsInvariantViolation(t *testing.T) {
	_, err := ResponseTime([]core.Segment{seg(0, 0, 1), seg(3, 1, 2)}, 1)
	assert.ErrorIs(t, err, core.ErrInvariant)
}

func TestResponseTime_NonPositiveCountIsInputError(t *testing.T) {
	_, err := ResponseTime(nil, 0)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestContextSwitches(t *testing.T) {
	tests := []struct {
		name  string
		order []core.Segment
		want  int
	}{
		{"empty timeline", nil, 0},
		{"single segment", []core.Segment{seg(0, 0, 3)}, 0},
		{"four segments", []core.Segment{seg(0, 0, 2), seg(1, 2, 4), seg(0, 4, 7), seg(1, 7, 8)}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContextSwitches(tc.order))
		})
	}
}

func TestFairness(t *testing.T) {
	assert.Equal(t, 8, Fairness([]int{0, 5, 8}))
	assert.Equal(t, 7, Fairness([]int{9, 2, 4}))
	assert.Equal(t, 0, Fairness([]int{3, 3, 3}))
	assert.Equal(t, 0, Fairness([]int{0}))
	assert.Equal(t, 0, Fairness(nil))
}

func seg(process, start, end int) core.Segment {
	return core.Segment{Process: process, Start: start, End: end}
}
