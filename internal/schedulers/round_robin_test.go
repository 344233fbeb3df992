package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/internal/core"
)

func TestScheduleRoundRobin_TwoProcesses(t *testing.T) {
	got, err := ScheduleRoundRobin(mustSet(t, []int{5, 3}, nil), 2)
	require.NoError(t, err)

	assert.Equal(t, "Round Robin", got.Algorithm)
	assert.Equal(t, []core.Segment{
		seg(0, 0, 2), seg(1, 2, 4), seg(0, 4, 6), seg(1, 6, 7), seg(0, 7, 8),
	}, got.ExecutionOrder)
	assert.Equal(t, []int{3, 4}, got.WaitingTimes)
	assert.Equal(t, []int{8, 7}, got.TurnAroundTimes)
	assert.Equal(t, 4, got.ContextSwitches)
	assert.Equal(t, 1.0, got.ResponseTime)
}

func TestScheduleRoundRobin_ThreeProcesses(t *testing.T) {
	got, err := ScheduleRoundRobin(mustSet(t, []int{5, 3, 8}, nil), 2)
	require.NoError(t, err)

	assert.Equal(t, []core.Segment{
		seg(0, 0, 2), seg(1, 2, 4), seg(2, 4, 6),
		seg(0, 6, 8), seg(1, 8, 9), seg(2, 9, 11),
		seg(0, 11, 12), seg(2, 12, 14),
		seg(2, 14, 16),
	}, got.ExecutionOrder)
	assert.Equal(t, []int{7, 6, 8}, got.WaitingTimes)
	assert.Equal(t, 8, got.ContextSwitches)
	assert.Equal(t, 2.0, got.ResponseTime)
}

func TestScheduleRoundRobin_QuantumLargerThanEveryBurstIsFCFS(t *testing.T) {
	set := mustSet(t, []int{5, 3, 8}, nil)
	rr, err := ScheduleRoundRobin(set, 100)
	require.NoError(t, err)
	fcfs, err := ScheduleFirstComeFirstServe(set)
	require.NoError(t, err)

	assert.Equal(t, fcfs.ExecutionOrder, rr.ExecutionOrder)
	assert.Equal(t, fcfs.WaitingTimes, rr.WaitingTimes)
}

func TestScheduleRoundRobin_RejectsNonPositiveQuantum(t *testing.T) {
	for _, q := range []int{0, -3} {
		_, err := ScheduleRoundRobin(mustSet(t, []int{5, 3}, nil), q)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
		assert.Equal(t, "quantum", core.FieldErrors(err)[0].Field)
	}
}
