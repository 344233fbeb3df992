package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/internal/core"
)

func intPtr(v int) *int { return &v }

var defaultLimits = Limits{DefaultQuantum: 2, MaxProcesses: 10}

func TestScheduleRequest_WorkloadDefaults(t *testing.T) {
	req := ScheduleRequest{BurstTimes: []int{5, 3, 8}}

	w, err := req.Workload(defaultLimits)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Processes.Len())
	assert.Equal(t, 2, w.Quantum)
	assert.Equal(t, []int{0, 0, 0}, w.Processes.ArrivalTimes())
}

func TestScheduleRequest_ExplicitQuantumWins(t *testing.T) {
	req := ScheduleRequest{BurstTimes: []int{5}, Quantum: intPtr(4)}

	w, err := req.Workload(defaultLimits)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Quantum)
}

func TestScheduleRequest_ExplicitZeroQuantumIsRejected(t *testing.T) {
	req := ScheduleRequest{BurstTimes: []int{5}, Quantum: intPtr(0)}

	_, err := req.Workload(defaultLimits)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, "quantum", core.FieldErrors(err)[0].Field)

	_, err = req.ProcessSet(defaultLimits)
	assert.NoError(t, err, "quantum is only needed by round robin")
}

func TestScheduleRequest_NumProcessesMismatch(t *testing.T) {
	req := ScheduleRequest{NumProcesses: intPtr(3), BurstTimes: []int{5, 3}, ArrivalTimes: []int{0, 1}}

	_, err := req.ProcessSet(defaultLimits)
	require.Error(t, err)

	var fields []string
	for _, fe := range core.FieldErrors(err) {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"burst_times", "arrival_times"}, fields)
}

func TestScheduleRequest_NonPositiveCount(t *testing.T) {
	_, err := ScheduleRequest{NumProcesses: intPtr(0)}.ProcessSet(defaultLimits)
	assert.True(t, IsInvalidInput(err))

	_, err = ScheduleRequest{}.ProcessSet(defaultLimits)
	assert.True(t, IsInvalidInput(err))
}

func TestScheduleRequest_MaxProcesses(t *testing.T) {
	req := ScheduleRequest{BurstTimes: make([]int, 11)}

	_, err := req.Workload(defaultLimits)
	require.Error(t, err)
	fields := core.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Contains(t, fields[0].Reason, "at most 10")

	_, err = req.ProcessSet(Limits{})
	assert.NotContains(t, err.Error(), "at most", "zero limit disables the cap")
}

func TestScheduleRequest_TotalBurstLimit(t *testing.T) {
	limits := Limits{DefaultQuantum: 1, MaxProcesses: 10, MaxTotalBurst: 100}

	_, err := ScheduleRequest{BurstTimes: []int{60, 40}}.Workload(limits)
	assert.NoError(t, err, "the limit itself is allowed")

	for _, bursts := range [][]int{{60, 41}, {2000000000}} {
		_, err = ScheduleRequest{BurstTimes: bursts}.Workload(limits)
		require.Error(t, err, "bursts %v", bursts)
		assert.True(t, IsInvalidInput(err))
		fields := core.FieldErrors(err)
		require.Len(t, fields, 1)
		assert.Equal(t, "burst_times", fields[0].Field)
	}

	_, err = ScheduleRequest{BurstTimes: []int{2000000000}}.ProcessSet(Limits{})
	assert.NoError(t, err, "zero limits disable the check")
}
