package core

// Segment is one contiguous interval [Start, End) during which Process holds the CPU.
type Segment struct {
	Process int `json:"process"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

// Duration is End - Start.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// CpuMetric summarises how a single CPU spent a simulation.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a discrete simulated processor. It owns the clock and the
// execution timeline of one simulation and is not shared between runs.
type CPU struct {
	clock    int
	busy     int
	idle     int
	segments []Segment
}

func NewCPU() *CPU {
	return &CPU{segments: make([]Segment, 0)}
}

// Now returns the current simulated time.
func (c *CPU) Now() int {
	return c.clock
}

// Execute runs pid for duration units as a new segment and returns the
// clock afterwards. Non-positive durations emit nothing.
func (c *CPU) Execute(pid, duration int) int {
	if duration <= 0 {
		return c.clock
	}
	c.segments = append(c.segments, Segment{Process: pid, Start: c.clock, End: c.clock + duration})
	c.clock += duration
	c.busy += duration
	return c.clock
}

// Extend runs pid for duration units, growing the last segment when pid
// was also the last process on the CPU and nothing happened in between.
func (c *CPU) Extend(pid, duration int) int {
	if duration <= 0 {
		return c.clock
	}
	if n := len(c.segments); n > 0 && c.segments[n-1].Process == pid && c.segments[n-1].End == c.clock {
		c.segments[n-1].End += duration
		c.clock += duration
		c.busy += duration
		return c.clock
	}
	return c.Execute(pid, duration)
}

// Tick runs pid for a single time unit.
func (c *CPU) Tick(pid int) int {
	return c.Extend(pid, 1)
}

// Idle advances the clock without occupying the CPU.
func (c *CPU) Idle(duration int) int {
	if duration > 0 {
		c.clock += duration
		c.idle += duration
	}
	return c.clock
}

// Segments returns a copy of the execution timeline.
func (c *CPU) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Metric reports total, busy and idle time so far.
func (c *CPU) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.idle,
	}
}
