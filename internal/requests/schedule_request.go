package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler-comparison/internal/core"
)

// ScheduleRequest is the raw input collected from a client. NumProcesses
// defaults to len(BurstTimes) and ArrivalTimes to all zeros.
type ScheduleRequest struct {
	NumProcesses *int  `json:"num_processes,omitempty" form:"num_processes"`
	BurstTimes   []int `json:"burst_times" form:"burst_times"`
	ArrivalTimes []int `json:"arrival_times,omitempty" form:"arrival_times"`
	Quantum      *int  `json:"quantum,omitempty" form:"quantum"`
}

// Limits are boundary checks that depend on configuration.
type Limits struct {
	DefaultQuantum int
	MaxProcesses   int
	// MaxTotalBurst caps the summed burst times, which bounds how many
	// slices a simulation can emit. Zero disables the check.
	MaxTotalBurst int
}

func (r ScheduleRequest) numProcesses() int {
	if r.NumProcesses != nil {
		return *r.NumProcesses
	}
	return len(r.BurstTimes)
}

func (r ScheduleRequest) quantum(limits Limits) int {
	if r.Quantum != nil {
		return *r.Quantum
	}
	return limits.DefaultQuantum
}

func (r ScheduleRequest) checkLimits(limits Limits) error {
	if n := r.numProcesses(); limits.MaxProcesses > 0 && n > limits.MaxProcesses {
		return &core.FieldError{Field: "num_processes", Reason: fmt.Sprintf("at most %d processes allowed, got %d", limits.MaxProcesses, n)}
	}
	if limits.MaxTotalBurst > 0 {
		total := 0
		for _, bt := range r.BurstTimes {
			if bt <= 0 {
				continue
			}
			if bt > limits.MaxTotalBurst-total {
				return &core.FieldError{Field: "burst_times", Reason: fmt.Sprintf("total burst time must not exceed %d", limits.MaxTotalBurst)}
			}
			total += bt
		}
	}
	return nil
}

// ProcessSet validates the request without requiring a quantum.
func (r ScheduleRequest) ProcessSet(limits Limits) (core.ProcessSet, error) {
	if err := r.checkLimits(limits); err != nil {
		return core.ProcessSet{}, err
	}
	return core.NewProcessSet(r.numProcesses(), r.BurstTimes, r.ArrivalTimes)
}

// Workload validates the full request, quantum included.
func (r ScheduleRequest) Workload(limits Limits) (core.Workload, error) {
	if err := r.checkLimits(limits); err != nil {
		return core.Workload{}, err
	}
	return core.NewWorkload(r.numProcesses(), r.BurstTimes, r.ArrivalTimes, r.quantum(limits))
}

// IsInvalidInput reports whether err came from request validation.
func IsInvalidInput(err error) bool {
	return errors.Is(err, core.ErrInvalidInput)
}
