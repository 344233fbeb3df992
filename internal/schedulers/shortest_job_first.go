package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// ScheduleShortestJobFirst runs processes in ascending burst order without
// preemption. Every process is assumed present at t=0.
func ScheduleShortestJobFirst(set core.ProcessSet) (responses.ScheduleResponse, error) {
	if err := set.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running sjf algorithm with %d processes", set.Len())

	cpu, waitingTimes := runToCompletion(set, sortShortestJob(set))
	return generateResponse(ShortestJobFirst, set, cpu, waitingTimes)
}

// sortShortestJob returns process indices by ascending burst time; equal
// bursts keep their original relative order.
func sortShortestJob(set core.ProcessSet) []int {
	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return set.At(order[i]).BurstTime < set.At(order[j]).BurstTime
	})
	return order
}
