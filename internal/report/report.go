// Package report renders simulation results as plain-text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/responses"
)

// WriteSchedule prints the title, Gantt strip and per-process table of one result.
func WriteSchedule(w io.Writer, r responses.ScheduleResponse) {
	writeTitle(w, r.Algorithm)
	writeGantt(w, r.ExecutionOrder)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Burst", "Arrival", "First start", "Wait", "Turnaround", "Exit"})
	rows := make([][]string, 0, len(r.Details))
	for _, d := range r.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.FirstStart),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", r.ResponseTime),
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", r.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// WriteComparison prints every result followed by a summary table and the best algorithm.
func WriteComparison(w io.Writer, c responses.ComparisonResponse) {
	for _, r := range c.Results {
		WriteSchedule(w, r)
	}

	writeTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Response", "Switches", "Fairness", "Utilization"})
	for _, r := range c.Results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.ResponseTime),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprint(r.Fairness),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
		})
	}
	table.Render()

	for _, f := range c.Failures {
		_, _ = fmt.Fprintf(w, "%s failed: %s\n", f.Algorithm, f.Error)
	}
	if c.Best != nil {
		_, _ = fmt.Fprintf(w, "Best algorithm: %s (score %.2f)\n", c.Best.Algorithm, c.Best.Score)
	}
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// writeGantt draws one cell per segment with the boundary times underneath.
// Time the CPU spends idle gets its own cell.
func writeGantt(w io.Writer, order []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	var cells, ticks strings.Builder
	cells.WriteString("|")
	cell := func(label string, start int) {
		width := max(len(label)+2, 6)
		pad := width - len(label)
		cells.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")

		mark := fmt.Sprint(start)
		ticks.WriteString(mark + strings.Repeat(" ", max(width+1-len(mark), 1)))
	}

	now := 0
	for _, seg := range order {
		if seg.Start > now {
			cell("idle", now)
		}
		cell(fmt.Sprintf("P%d", seg.Process), seg.Start)
		now = seg.End
	}
	if len(order) > 0 {
		ticks.WriteString(fmt.Sprint(now))
	}
	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}
