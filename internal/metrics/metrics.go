// Package metrics derives the scalar scheduling metrics shared by every
// simulator from a finished execution timeline.
package metrics

import (
	"fmt"

	"cpu-scheduler-comparison/internal/core"
)

// ResponseTime is the mean, across processes, of the start of each
// process's first segment. A process missing from order is an invariant
// violation of the simulator that produced it.
func ResponseTime(order []core.Segment, numProcesses int) (float64, error) {
	if numProcesses <= 0 {
		return 0, &core.FieldError{Field: "num_processes", Reason: fmt.Sprintf("must be positive, got %d", numProcesses)}
	}
	firstStart := make([]int, numProcesses)
	seen := make([]bool, numProcesses)
	for _, seg := range order {
		if seg.Process < 0 || seg.Process >= numProcesses {
			return 0, &core.InvariantError{Reason: fmt.Sprintf("segment references unknown process %d", seg.Process)}
		}
		if !seen[seg.Process] {
			seen[seg.Process] = true
			firstStart[seg.Process] = seg.Start
		}
	}

	sum := 0
	for pid, ok := range seen {
		if !ok {
			return 0, &core.InvariantError{Reason: fmt.Sprintf("process %d never ran", pid)}
		}
		sum += firstStart[pid]
	}
	return float64(sum) / float64(numProcesses), nil
}

// ContextSwitches counts transitions between segments. An empty timeline has none.
func ContextSwitches(order []core.Segment) int {
	if len(order) == 0 {
		return 0
	}
	return len(order) - 1
}

// Fairness is the spread between the longest and shortest waiting time.
func Fairness(waitingTimes []int) int {
	if len(waitingTimes) == 0 {
		return 0
	}
	lo, hi := waitingTimes[0], waitingTimes[0]
	for _, w := range waitingTimes[1:] {
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	return hi - lo
}
