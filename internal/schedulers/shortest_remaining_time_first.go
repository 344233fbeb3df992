package schedulers

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// SRTFStrategy selects how the preemptive simulator advances time.
type SRTFStrategy string

const (
	// SRTFTick re-evaluates the shortest remaining job every time unit.
	SRTFTick SRTFStrategy = "tick"
	// SRTFEvent only re-evaluates on arrivals and completions.
	SRTFEvent SRTFStrategy = "event"
)

// ctxCheckInterval is how many ticks pass between cancellation checks.
const ctxCheckInterval = 1024

// SRTFOptions tunes the preemptive simulator.
type SRTFOptions struct {
	Strategy SRTFStrategy
	// MaxTicks bounds the tick strategy; 0 means unbounded.
	MaxTicks int
}

// ParseSRTFStrategy accepts "tick" or "event"; empty means tick.
func ParseSRTFStrategy(s string) (SRTFStrategy, error) {
	switch SRTFStrategy(s) {
	case "", SRTFTick:
		return SRTFTick, nil
	case SRTFEvent:
		return SRTFEvent, nil
	}
	return "", fmt.Errorf("unknown srtf strategy %q (want tick or event)", s)
}

// SchedulePreemptiveShortestJobFirst always runs the arrived, unfinished
// process with the least remaining burst, preempting on arrivals. The lowest
// index wins ties. Both strategies produce identical results.
func SchedulePreemptiveShortestJobFirst(ctx context.Context, set core.ProcessSet, opts SRTFOptions) (responses.ScheduleResponse, error) {
	if err := set.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	strategy, err := ParseSRTFStrategy(string(opts.Strategy))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	logrus.Debugf("running preemptive sjf algorithm (%s) with %d processes, total burst %d", strategy, set.Len(), set.TotalBurst())

	var (
		cpu          *core.CPU
		waitingTimes []int
	)
	if strategy == SRTFEvent {
		cpu, waitingTimes, err = srtfByEvent(ctx, set)
	} else {
		cpu, waitingTimes, err = srtfByTick(ctx, set, opts.MaxTicks)
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(PreemptiveShortestJobFirst, set, cpu, waitingTimes)
}

func srtfByTick(ctx context.Context, set core.ProcessSet, maxTicks int) (*core.CPU, []int, error) {
	n := set.Len()
	cpu := core.NewCPU()
	burstTimes := set.BurstTimes()
	arrivalTimes := set.ArrivalTimes()
	remaining := set.BurstTimes()
	waitingTimes := make([]int, n)

	completed := 0
	for step := 0; completed < n; step++ {
		if maxTicks > 0 && step >= maxTicks {
			return nil, nil, fmt.Errorf("%w: %d ticks, %d of %d processes finished", core.ErrStepBudgetExceeded, maxTicks, completed, n)
		}
		if step%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		shortest, ok := selectShortest(remaining, arrivalTimes, cpu.Now())
		if !ok {
			cpu.Idle(1)
			continue
		}

		finish := cpu.Tick(shortest)
		remaining[shortest]--
		if remaining[shortest] == 0 {
			completed++
			waitingTimes[shortest] = max(0, finish-burstTimes[shortest]-arrivalTimes[shortest])
		}
	}
	return cpu, waitingTimes, nil
}

// selectShortest scans left to right for the arrived process with the
// smallest non-zero remaining time; the strict comparison keeps the lowest
// index among equals.
func selectShortest(remaining, arrivalTimes []int, now int) (int, bool) {
	shortest, found := 0, false
	for pid, left := range remaining {
		if arrivalTimes[pid] > now || left == 0 {
			continue
		}
		if !found || left < remaining[shortest] {
			shortest, found = pid, true
		}
	}
	return shortest, found
}
