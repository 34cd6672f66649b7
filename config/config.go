package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	RoundRobinTimeQuantum int
}

const envPrefix = "CPUSCHED"

// Load reads config.yaml from dir. A missing file is not an error: defaults
// and CPUSCHED_* environment variables still apply.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("scheduler.round_robin.time_quantum", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
	}
	if cfg.RoundRobinTimeQuantum < 0 {
		return nil, fmt.Errorf("config: scheduler.round_robin.time_quantum must not be negative, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
