package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler-comparison/config"
)

var (
	configPath string // Path to a config file; config.yaml in the working directory when empty
	logLevel   string // Log verbosity level, overrides log_level from config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:          "cpusched",
	Short:        "Simulate and compare FCFS, SJF, Round Robin and preemptive SJF scheduling",
	SilenceUsage: true,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies the log level. Without
// --config the process-wide config is used; the returned value is a copy
// that flags may override.
func loadConfig() (*config.SchedulerConfig, error) {
	var cfg *config.SchedulerConfig
	if configPath == "" {
		shared, err := config.GetSchedulerConfig()
		if err != nil {
			return nil, err
		}
		local := *shared
		cfg = &local
	} else {
		var err error
		if cfg, err = config.LoadSchedulerConfig(configPath); err != nil {
			return nil, err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
