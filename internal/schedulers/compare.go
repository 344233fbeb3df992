package schedulers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// Options configures a comparison run.
type Options struct {
	SRTF SRTFOptions
}

type outcome struct {
	response responses.ScheduleResponse
	err      error
}

// Compare runs every algorithm on w concurrently and collects the results
// in comparison order. Invalid input fails the whole call before anything
// runs; a failure inside one algorithm only drops that algorithm's result.
func Compare(ctx context.Context, w core.Workload, opts Options) (responses.ComparisonResponse, error) {
	if err := errors.Join(w.Processes.Validate(), core.ValidateQuantum(w.Quantum)); err != nil {
		return responses.ComparisonResponse{}, err
	}

	runID := uuid.NewString()
	log := logrus.WithField("run_id", runID)
	log.Infof("comparing %d algorithms over %d processes (quantum %d)", len(Algorithms), w.Processes.Len(), w.Quantum)

	outcomes := make([]outcome, len(Algorithms))
	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			outcomes[i] = simulateIsolated(algorithm, func() (responses.ScheduleResponse, error) {
				return Simulate(ctx, algorithm, w, opts)
			})
		}(i, algorithm)
	}
	wg.Wait()

	comparison := responses.ComparisonResponse{
		RunID:   runID,
		Results: make([]responses.ScheduleResponse, 0, len(Algorithms)),
	}
	for i, o := range outcomes {
		if o.err != nil {
			log.WithField("algorithm", Algorithms[i]).Errorf("algorithm failed: %v", o.err)
			comparison.Failures = append(comparison.Failures, responses.AlgorithmFailure{
				Algorithm: string(Algorithms[i]),
				Error:     o.err.Error(),
			})
			continue
		}
		comparison.Results = append(comparison.Results, o.response)
	}
	comparison.Best = Best(comparison.Results)
	if comparison.Best != nil {
		log.Infof("best algorithm: %s (score %.2f)", comparison.Best.Algorithm, comparison.Best.Score)
	}
	return comparison, nil
}

// simulateIsolated turns a panic inside a simulator into an invariant error.
func simulateIsolated(algorithm Algorithm, run func() (responses.ScheduleResponse, error)) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = outcome{err: &core.InvariantError{Algorithm: string(algorithm), Reason: fmt.Sprintf("panic: %v", r)}}
		}
	}()
	response, err := run()
	return outcome{response: response, err: err}
}

// Score sums average waiting, average turnaround, response time and context
// switches. Lower is better.
func Score(r responses.ScheduleResponse) float64 {
	return r.AverageWaitingTime + r.AverageTurnAroundTime + r.ResponseTime + float64(r.ContextSwitches)
}

// Best returns the lowest-scoring result; the earlier result wins a tie.
func Best(results []responses.ScheduleResponse) *responses.BestAlgorithm {
	var best *responses.BestAlgorithm
	for _, r := range results {
		score := Score(r)
		if best == nil || score < best.Score {
			best = &responses.BestAlgorithm{Algorithm: r.Algorithm, Score: score}
		}
	}
	return best
}
