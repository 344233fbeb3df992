package responses

import "cpu-scheduler-comparison/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	ArrivalTime    int `json:"arrival_time"`
	FirstStart     int `json:"first_start"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
}

// ScheduleResponse is the result of one simulator run. It is built once and
// never modified afterwards.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	WaitingTimes          []int             `json:"waiting_times"`
	TurnAroundTimes       []int             `json:"turn_around_times"`
	ExecutionOrder        []core.Segment    `json:"execution_order"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	ResponseTime          float64           `json:"response_time"`
	ContextSwitches       int               `json:"context_switches"`
	Fairness              int               `json:"fairness"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

// AlgorithmFailure records an algorithm whose result had to be discarded.
type AlgorithmFailure struct {
	Algorithm string `json:"algorithm"`
	Error     string `json:"error"`
}

// BestAlgorithm is the lowest-scoring successful result of a comparison.
type BestAlgorithm struct {
	Algorithm string  `json:"algorithm"`
	Score     float64 `json:"score"`
}

type ComparisonResponse struct {
	RunID    string             `json:"run_id"`
	Results  []ScheduleResponse `json:"results"`
	Failures []AlgorithmFailure `json:"failures,omitempty"`
	Best     *BestAlgorithm     `json:"best,omitempty"`
}
