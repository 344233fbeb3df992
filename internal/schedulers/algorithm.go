package schedulers

import (
	"context"
	"fmt"
	"strings"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// Algorithm identifies one scheduling discipline.
type Algorithm string

const (
	RoundRobin                 Algorithm = "Round Robin"
	ShortestJobFirst           Algorithm = "SJF"
	FirstComeFirstServe        Algorithm = "FCFS"
	PreemptiveShortestJobFirst Algorithm = "Preemptive SJF"
)

// Algorithms lists every discipline in comparison order.
var Algorithms = []Algorithm{RoundRobin, ShortestJobFirst, FirstComeFirstServe, PreemptiveShortestJobFirst}

var algorithmKeys = map[string]Algorithm{
	"rr":   RoundRobin,
	"sjf":  ShortestJobFirst,
	"fcfs": FirstComeFirstServe,
	"srtf": PreemptiveShortestJobFirst,
}

// Key is the short lowercase name used on the command line and in URLs.
func (a Algorithm) Key() string {
	for k, v := range algorithmKeys {
		if v == a {
			return k
		}
	}
	return ""
}

// ParseAlgorithm resolves a short key such as "rr" or "srtf".
func ParseAlgorithm(key string) (Algorithm, error) {
	if a, ok := algorithmKeys[strings.ToLower(strings.TrimSpace(key))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want one of fcfs, sjf, rr, srtf)", key)
}

// Simulate runs a single algorithm against w.
func Simulate(ctx context.Context, algorithm Algorithm, w core.Workload, opts Options) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(w.Processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(w.Processes)
	case RoundRobin:
		return ScheduleRoundRobin(w.Processes, w.Quantum)
	case PreemptiveShortestJobFirst:
		return SchedulePreemptiveShortestJobFirst(ctx, w.Processes, opts.SRTF)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("unknown algorithm %q", algorithm)
}
