package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	SRTFStrategy          string
	SRTFMaxTicks          int
	MaxProcesses          int
	MaxTotalBurst         int
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once and returns the shared config.
// Callers that need to change fields must work on a copy.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = LoadSchedulerConfig("")
	})

	return config, configErr
}

// LoadSchedulerConfig reads the config file at path, or config.yaml from the
// working directory when path is empty. A missing default file is not an
// error. CPUSCHED_* environment variables override file values.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.srtf.strategy", "tick")
	v.SetDefault("scheduler.srtf.max_ticks", 1000000)
	v.SetDefault("scheduler.max_processes", 1000)
	v.SetDefault("scheduler.max_total_burst", 1000000)

	v.SetEnvPrefix("cpusched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logrus.Debug("no config.yaml found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		SRTFStrategy:          v.GetString("scheduler.srtf.strategy"),
		SRTFMaxTicks:          v.GetInt("scheduler.srtf.max_ticks"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxTotalBurst:         v.GetInt("scheduler.max_total_burst"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems together.
func (c *SchedulerConfig) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be in 1..65535, got %d", c.Port))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.RoundRobinTimeQuantum <= 0 {
		errs = append(errs, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum))
	}
	if c.SRTFStrategy != "tick" && c.SRTFStrategy != "event" {
		errs = append(errs, fmt.Errorf("scheduler.srtf.strategy must be tick or event, got %q", c.SRTFStrategy))
	}
	if c.SRTFMaxTicks < 0 {
		errs = append(errs, fmt.Errorf("scheduler.srtf.max_ticks must not be negative, got %d", c.SRTFMaxTicks))
	}
	if c.MaxProcesses < 0 {
		errs = append(errs, fmt.Errorf("scheduler.max_processes must not be negative, got %d", c.MaxProcesses))
	}
	if c.MaxTotalBurst < 0 {
		errs = append(errs, fmt.Errorf("scheduler.max_total_burst must not be negative, got %d", c.MaxTotalBurst))
	}
	return errors.Join(errs...)
}
