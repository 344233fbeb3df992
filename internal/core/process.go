package core

import (
	"errors"
	"math"
	"strconv"
)

// Process is one schedulable unit. ID is its zero-based position in the input.
type Process struct {
	ID          int `json:"id"`
	BurstTime   int `json:"burst_time"`
	ArrivalTime int `json:"arrival_time"`
}

// ProcessSet is a validated, immutable list of processes.
type ProcessSet struct {
	processes []Process
}

// NewProcessSet validates the raw arrays and builds a ProcessSet.
// A nil arrivalTimes means every process arrives at 0.
// All offending fields are reported together.
func NewProcessSet(numProcesses int, burstTimes, arrivalTimes []int) (ProcessSet, error) {
	var errs []error
	if numProcesses <= 0 {
		errs = append(errs, fieldErrorf("num_processes", "must be positive, got %d", numProcesses))
	}
	if len(burstTimes) != numProcesses {
		errs = append(errs, fieldErrorf("burst_times", "expected %d values, got %d", numProcesses, len(burstTimes)))
	}
	if arrivalTimes != nil && len(arrivalTimes) != numProcesses {
		errs = append(errs, fieldErrorf("arrival_times", "expected %d values, got %d", numProcesses, len(arrivalTimes)))
	}
	for i, bt := range burstTimes {
		if bt <= 0 {
			errs = append(errs, fieldErrorf(indexed("burst_times", i), "must be positive, got %d", bt))
		}
	}
	for i, at := range arrivalTimes {
		if at < 0 {
			errs = append(errs, fieldErrorf(indexed("arrival_times", i), "must not be negative, got %d", at))
		}
	}
	if len(errs) > 0 {
		return ProcessSet{}, errors.Join(errs...)
	}
	if err := checkHorizon(burstTimes, arrivalTimes); err != nil {
		return ProcessSet{}, err
	}

	processes := make([]Process, numProcesses)
	for i := range processes {
		processes[i] = Process{ID: i, BurstTime: burstTimes[i]}
		if arrivalTimes != nil {
			processes[i].ArrivalTime = arrivalTimes[i]
		}
	}
	return ProcessSet{processes: processes}, nil
}

// checkHorizon rejects sets whose last completion time, at most the latest
// arrival plus the total burst, does not fit in an int.
func checkHorizon(burstTimes, arrivalTimes []int) error {
	total := 0
	for _, bt := range burstTimes {
		if bt > math.MaxInt-total {
			return fieldErrorf("burst_times", "total burst time overflows")
		}
		total += bt
	}
	for i, at := range arrivalTimes {
		if at > math.MaxInt-total {
			return fieldErrorf(indexed("arrival_times", i), "arrival plus total burst time overflows")
		}
	}
	return nil
}

// Len returns the number of processes.
func (s ProcessSet) Len() int {
	return len(s.processes)
}

// At returns process i.
func (s ProcessSet) At(i int) Process {
	return s.processes[i]
}

// BurstTimes returns a fresh copy of the burst times in index order.
func (s ProcessSet) BurstTimes() []int {
	out := make([]int, len(s.processes))
	for i, p := range s.processes {
		out[i] = p.BurstTime
	}
	return out
}

// ArrivalTimes returns a fresh copy of the arrival times in index order.
func (s ProcessSet) ArrivalTimes() []int {
	out := make([]int, len(s.processes))
	for i, p := range s.processes {
		out[i] = p.ArrivalTime
	}
	return out
}

// TotalBurst is the CPU time needed to finish every process.
func (s ProcessSet) TotalBurst() int {
	total := 0
	for _, p := range s.processes {
		total += p.BurstTime
	}
	return total
}

// Validate rejects the zero-value set.
func (s ProcessSet) Validate() error {
	if len(s.processes) == 0 {
		return fieldErrorf("num_processes", "must be positive, got 0")
	}
	return nil
}

// ValidateQuantum checks a round robin time quantum.
func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fieldErrorf("quantum", "must be positive, got %d", quantum)
	}
	return nil
}

// Workload bundles everything a full comparison needs.
type Workload struct {
	Processes ProcessSet
	Quantum   int
}

// NewWorkload validates the process arrays and the quantum in one pass.
func NewWorkload(numProcesses int, burstTimes, arrivalTimes []int, quantum int) (Workload, error) {
	set, err := NewProcessSet(numProcesses, burstTimes, arrivalTimes)
	if qErr := ValidateQuantum(quantum); qErr != nil {
		err = errors.Join(err, qErr)
	}
	if err != nil {
		return Workload{}, err
	}
	return Workload{Processes: set, Quantum: quantum}, nil
}

func indexed(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
