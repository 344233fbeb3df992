package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// ScheduleRoundRobin sweeps the processes in index order, giving each
// unfinished one up to timeQuantum units per sweep, until all are done.
// Arrival times are not consulted.
func ScheduleRoundRobin(set core.ProcessSet, timeQuantum int) (responses.ScheduleResponse, error) {
	if err := set.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	// a non-positive quantum never drains a process
	if err := core.ValidateQuantum(timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	cpu := core.NewCPU()
	burstTimes := set.BurstTimes()
	remaining := set.BurstTimes()
	waitingTimes := make([]int, set.Len())

	for {
		done := true
		for pid := range remaining {
			if remaining[pid] == 0 {
				continue
			}
			done = false

			if remaining[pid] > timeQuantum {
				cpu.Execute(pid, timeQuantum)
				remaining[pid] -= timeQuantum
				continue
			}
			finish := cpu.Execute(pid, remaining[pid])
			waitingTimes[pid] = finish - burstTimes[pid]
			remaining[pid] = 0
		}
		if done {
			break
		}
	}

	return generateResponse(RoundRobin, set, cpu, waitingTimes)
}
