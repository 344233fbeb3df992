package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cpu-scheduler-comparison/config"
	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/report"
	"cpu-scheduler-comparison/internal/requests"
	"cpu-scheduler-comparison/internal/schedulers"
	"cpu-scheduler-comparison/internal/workload"
)

var (
	burstTimes   []int  // Burst time per process
	arrivalTimes []int  // Arrival time per process
	quantum      int    // Round robin time quantum; 0 uses the configured default
	workloadFile string // YAML or CSV workload file
	srtfStrategy string // tick or event; empty uses the configured strategy
	jsonOutput   bool   // Print JSON instead of tables
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all four algorithms on one process set and rank them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, request, err := prepare(cmd)
		if err != nil {
			return err
		}
		w, err := request.Workload(limits(cfg))
		if err != nil {
			return err
		}
		comparison, err := schedulers.Compare(cmd.Context(), w, options(cfg))
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), comparison)
		}
		report.WriteComparison(cmd.OutOrStdout(), comparison)
		return nil
	},
}

var simulateCmd = &cobra.Command{
	Use:       "simulate <fcfs|sjf|rr|srtf>",
	Short:     "Run a single scheduling algorithm",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"fcfs", "sjf", "rr", "srtf"},
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, err := schedulers.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		cfg, request, err := prepare(cmd)
		if err != nil {
			return err
		}

		var w core.Workload
		if algorithm == schedulers.RoundRobin {
			w, err = request.Workload(limits(cfg))
		} else {
			w.Processes, err = request.ProcessSet(limits(cfg))
		}
		if err != nil {
			return err
		}
		result, err := schedulers.Simulate(cmd.Context(), algorithm, w, options(cfg))
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		report.WriteSchedule(cmd.OutOrStdout(), result)
		return nil
	},
}

// prepare loads config and builds the request from flags or a workload file.
func prepare(cmd *cobra.Command) (*config.SchedulerConfig, requests.ScheduleRequest, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, requests.ScheduleRequest{}, err
	}
	if srtfStrategy != "" {
		strategy, err := schedulers.ParseSRTFStrategy(srtfStrategy)
		if err != nil {
			return nil, requests.ScheduleRequest{}, err
		}
		cfg.SRTFStrategy = string(strategy)
	}

	var request requests.ScheduleRequest
	if workloadFile != "" {
		if request, err = workload.Load(workloadFile); err != nil {
			return nil, request, err
		}
	} else {
		request.BurstTimes = burstTimes
		if cmd.Flags().Changed("arrival") {
			request.ArrivalTimes = arrivalTimes
		}
	}
	if cmd.Flags().Changed("quantum") {
		request.Quantum = &quantum
	}
	if len(request.BurstTimes) == 0 {
		return nil, request, fmt.Errorf("no processes given: use --burst or --file")
	}
	return cfg, request, nil
}

func limits(cfg *config.SchedulerConfig) requests.Limits {
	return requests.Limits{
		DefaultQuantum: cfg.RoundRobinTimeQuantum,
		MaxProcesses:   cfg.MaxProcesses,
		MaxTotalBurst:  cfg.MaxTotalBurst,
	}
}

func options(cfg *config.SchedulerConfig) schedulers.Options {
	return schedulers.Options{SRTF: schedulers.SRTFOptions{
		Strategy: schedulers.SRTFStrategy(cfg.SRTFStrategy),
		MaxTicks: cfg.SRTFMaxTicks,
	}}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	for _, c := range []*cobra.Command{compareCmd, simulateCmd} {
		c.Flags().IntSliceVar(&burstTimes, "burst", nil, "Comma-separated burst time per process")
		c.Flags().IntSliceVar(&arrivalTimes, "arrival", nil, "Comma-separated arrival time per process (default all 0)")
		c.Flags().IntVar(&quantum, "quantum", 0, "Round robin time quantum (default from config)")
		c.Flags().StringVar(&workloadFile, "file", "", "YAML or CSV workload file")
		c.Flags().StringVar(&srtfStrategy, "srtf-strategy", "", "Preemptive SJF strategy: tick or event (default from config)")
		c.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
		rootCmd.AddCommand(c)
	}
}
