package schedulers

import (
	"container/heap"
	"context"
	"sort"

	"cpu-scheduler-comparison/internal/core"
)

type readyProcess struct {
	pid       int
	remaining int
}

// readyHeap orders arrived processes by remaining time, then by index.
type readyHeap []readyProcess

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].remaining != h[j].remaining {
		return h[i].remaining < h[j].remaining
	}
	return h[i].pid < h[j].pid
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x interface{}) {
	*h = append(*h, x.(readyProcess))
}

func (h *readyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// srtfByEvent jumps between arrival and completion events. Between two
// events the running process stays the strict minimum, so the timeline
// matches the tick simulation exactly.
func srtfByEvent(ctx context.Context, set core.ProcessSet) (*core.CPU, []int, error) {
	n := set.Len()
	cpu := core.NewCPU()
	waitingTimes := make([]int, n)

	arrivals := make([]int, n)
	for i := range arrivals {
		arrivals[i] = i
	}
	sort.SliceStable(arrivals, func(i, j int) bool {
		return set.At(arrivals[i]).ArrivalTime < set.At(arrivals[j]).ArrivalTime
	})

	ready := &readyHeap{}
	next := 0
	for completed := 0; completed < n; {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		now := cpu.Now()
		for next < n && set.At(arrivals[next]).ArrivalTime <= now {
			p := set.At(arrivals[next])
			heap.Push(ready, readyProcess{pid: p.ID, remaining: p.BurstTime})
			next++
		}
		if ready.Len() == 0 {
			cpu.Idle(set.At(arrivals[next]).ArrivalTime - now)
			continue
		}

		running := heap.Pop(ready).(readyProcess)
		slice := running.remaining
		if next < n {
			slice = min(slice, set.At(arrivals[next]).ArrivalTime-now)
		}
		finish := cpu.Extend(running.pid, slice)
		running.remaining -= slice

		if running.remaining > 0 {
			heap.Push(ready, running)
			continue
		}
		completed++
		p := set.At(running.pid)
		waitingTimes[running.pid] = max(0, finish-p.BurstTime-p.ArrivalTime)
	}
	return cpu, waitingTimes, nil
}
