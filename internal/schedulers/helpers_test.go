package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/internal/core"
)

func mustSet(t *testing.T, burstTimes, arrivalTimes []int) core.ProcessSet {
	t.Helper()
	set, err := core.NewProcessSet(len(burstTimes), burstTimes, arrivalTimes)
	require.NoError(t, err)
	return set
}

func mustWorkload(t *testing.T, burstTimes, arrivalTimes []int, quantum int) core.Workload {
	t.Helper()
	w, err := core.NewWorkload(len(burstTimes), burstTimes, arrivalTimes, quantum)
	require.NoError(t, err)
	return w
}

func seg(process, start, end int) core.Segment {
	return core.Segment{Process: process, Start: start, End: end}
}

// randomWorkloads returns a fixed-seed batch of process sets with small
// bursts, sparse arrivals and varied quanta.
func randomWorkloads(t *testing.T, count int) []core.Workload {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	out := make([]core.Workload, 0, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.Intn(8)
		bursts := make([]int, n)
		arrivals := make([]int, n)
		for j := 0; j < n; j++ {
			bursts[j] = 1 + rng.Intn(12)
			arrivals[j] = rng.Intn(15)
		}
		out = append(out, mustWorkload(t, bursts, arrivals, 1+rng.Intn(5)))
	}
	return out
}
