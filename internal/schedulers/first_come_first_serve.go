package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes strictly in index order without
// preemption. Arrival times are not consulted.
func ScheduleFirstComeFirstServe(set core.ProcessSet) (responses.ScheduleResponse, error) {
	if err := set.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running fcfs algorithm with %d processes", set.Len())

	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	cpu, waitingTimes := runToCompletion(set, order)
	return generateResponse(FirstComeFirstServe, set, cpu, waitingTimes)
}

// runToCompletion executes each process in order for its whole burst.
func runToCompletion(set core.ProcessSet, order []int) (*core.CPU, []int) {
	cpu := core.NewCPU()
	waitingTimes := make([]int, set.Len())
	for _, pid := range order {
		burst := set.At(pid).BurstTime
		finish := cpu.Execute(pid, burst)
		waitingTimes[pid] = finish - burst
	}
	return cpu, waitingTimes
}
