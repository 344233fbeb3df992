package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
	"cpu-scheduler-comparison/internal/schedulers"
)

func TestWriteSchedule(t *testing.T) {
	set, err := core.NewProcessSet(3, []int{5, 3, 8}, nil)
	require.NoError(t, err)
	result, err := schedulers.ScheduleFirstComeFirstServe(set)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSchedule(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "FCFS")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "|  P0  |  P1  |  P2  |")
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "4.33")
}

func TestWriteComparison(t *testing.T) {
	w, err := core.NewWorkload(3, []int{5, 3, 8}, nil, 2)
	require.NoError(t, err)
	comparison, err := schedulers.Compare(context.Background(), w, schedulers.Options{})
	require.NoError(t, err)
	comparison.Failures = append(comparison.Failures, responses.AlgorithmFailure{Algorithm: "X", Error: "boom"})

	var buf bytes.Buffer
	WriteComparison(&buf, comparison)
	out := buf.String()

	for _, name := range []string{"Round Robin", "SJF", "FCFS", "Preemptive SJF", "Comparison"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "X failed: boom")
	assert.Contains(t, out, "Best algorithm: SJF (score 18.33)")
}

func TestWriteGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	writeGantt(&buf, nil)
	assert.Equal(t, "Gantt schedule\n|\n\n\n", buf.String())
}

func TestWriteGantt_ShowsIdleGaps(t *testing.T) {
	var buf bytes.Buffer
	writeGantt(&buf, []core.Segment{{Process: 0, Start: 0, End: 2}, {Process: 1, Start: 5, End: 7}})

	assert.Equal(t, "Gantt schedule\n"+
		"|  P0  | idle |  P1  |\n"+
		"0      2      5      7\n\n", buf.String())
}

func TestWriteGantt_IdleBeforeFirstArrival(t *testing.T) {
	var buf bytes.Buffer
	writeGantt(&buf, []core.Segment{{Process: 0, Start: 3, End: 4}})

	assert.Equal(t, "Gantt schedule\n"+
		"| idle |  P0  |\n"+
		"0      3      4\n\n", buf.String())
}
