package schedulers

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/metrics"
	"cpu-scheduler-comparison/internal/responses"
	"cpu-scheduler-comparison/internal/util"
)

// generateResponse turns a finished timeline into a ScheduleResponse,
// checking that every process ran for exactly its burst time.
func generateResponse(algorithm Algorithm, set core.ProcessSet, cpu *core.CPU, waitingTimes []int) (responses.ScheduleResponse, error) {
	n := set.Len()
	order := cpu.Segments()

	if err := checkCoverage(set, order); err != nil {
		return responses.ScheduleResponse{}, withAlgorithm(err, algorithm)
	}

	turnAroundTimes := make([]int, n)
	for i := range turnAroundTimes {
		if waitingTimes[i] < 0 {
			return responses.ScheduleResponse{}, &core.InvariantError{
				Algorithm: string(algorithm),
				Reason:    fmt.Sprintf("process %d has negative waiting time %d", i, waitingTimes[i]),
			}
		}
		turnAroundTimes[i] = set.At(i).BurstTime + waitingTimes[i]
	}

	responseTime, err := metrics.ResponseTime(order, n)
	if err != nil {
		return responses.ScheduleResponse{}, withAlgorithm(err, algorithm)
	}

	cpuMetric := cpu.Metric()
	response := responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		WaitingTimes:          waitingTimes,
		TurnAroundTimes:       turnAroundTimes,
		ExecutionOrder:        order,
		AverageWaitingTime:    util.CalculateAverage(waitingTimes),
		AverageTurnAroundTime: util.CalculateAverage(turnAroundTimes),
		ResponseTime:          responseTime,
		ContextSwitches:       metrics.ContextSwitches(order),
		Fairness:              metrics.Fairness(waitingTimes),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        util.Ratio(cpuMetric.UtilizationTime, cpuMetric.TotalTime),
		CpuThroughput:         util.Ratio(n, cpuMetric.TotalTime),
		Details:               generateProcessDetails(set, order, waitingTimes, turnAroundTimes),
	}
	logrus.Debugf("%s: avg waiting %.2f, avg turnaround %.2f, context switches %d",
		algorithm, response.AverageWaitingTime, response.AverageTurnAroundTime, response.ContextSwitches)
	return response, nil
}

func generateProcessDetails(set core.ProcessSet, order []core.Segment, waitingTimes, turnAroundTimes []int) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, set.Len())
	started := make([]bool, set.Len())
	for i := range details {
		p := set.At(i)
		details[i] = responses.ProcessResponse{
			ProcessId:      p.ID,
			BurstTime:      p.BurstTime,
			ArrivalTime:    p.ArrivalTime,
			WaitingTime:    waitingTimes[i],
			TurnAroundTime: turnAroundTimes[i],
		}
	}
	for _, seg := range order {
		d := &details[seg.Process]
		if !started[seg.Process] {
			started[seg.Process] = true
			d.FirstStart = seg.Start
		}
		d.CompletionTime = seg.End
	}
	return details
}

func checkCoverage(set core.ProcessSet, order []core.Segment) error {
	occupied := make([]int, set.Len())
	for k, seg := range order {
		if seg.Process < 0 || seg.Process >= set.Len() {
			return &core.InvariantError{Reason: fmt.Sprintf("segment %d references unknown process %d", k, seg.Process)}
		}
		if seg.End <= seg.Start {
			return &core.InvariantError{Reason: fmt.Sprintf("segment %d is empty [%d,%d)", k, seg.Start, seg.End)}
		}
		if k > 0 && seg.Start < order[k-1].End {
			return &core.InvariantError{Reason: fmt.Sprintf("segment %d overlaps its predecessor", k)}
		}
		occupied[seg.Process] += seg.Duration()
	}
	for i, got := range occupied {
		if want := set.At(i).BurstTime; got != want {
			return &core.InvariantError{Reason: fmt.Sprintf("process %d ran for %d units, burst is %d", i, got, want)}
		}
	}
	return nil
}

func withAlgorithm(err error, algorithm Algorithm) error {
	var invariant *core.InvariantError
	if errors.As(err, &invariant) && invariant.Algorithm == "" {
		invariant.Algorithm = string(algorithm)
	}
	return err
}
