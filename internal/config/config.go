// internal/config/config.go
package config

import "time"

type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	IntervalMs int              `yaml:"interval_ms"`
	Exporter   string           `yaml:"exporter"` // stdout | log
	Instances  []InstanceConfig `yaml:"instances"`

	// Redis enables the persistent last-state store. Optional;
	// absent means in-memory.
	Redis *RedisConfig `yaml:"redis"`
}

// ---- INSTANCE ----

type InstanceConfig struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	TimeoutS     float64  `yaml:"timeout"` // seconds
	ExpectedMode string   `yaml:"expected_mode"`
	Tags         []string `yaml:"tags"`
}

// Timeout is the per-command socket budget.
func (i InstanceConfig) Timeout() time.Duration {
	return time.Duration(i.TimeoutS * float64(time.Second))
}

// ---- STATE STORE ----

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTLMs    int    `yaml:"ttl_ms"` // 0 = keys never expire
}
