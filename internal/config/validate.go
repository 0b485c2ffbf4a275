// internal/config/validate.go
package config

import (
	"fmt"
)

// expectedModes are the roles a healthy server can report. An
// expected_mode outside this set could never match.
var expectedModes = map[string]struct{}{
	"leader":     {},
	"follower":   {},
	"observer":   {},
	"standalone": {},
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if len(cfg.Monitor.Instances) == 0 {
		return fmt.Errorf("config: at least one instance required")
	}

	if cfg.Monitor.IntervalMs < 0 {
		return fmt.Errorf("config: interval_ms must be >= 0")
	}

	switch cfg.Monitor.Exporter {
	case "", "stdout", "log":
	default:
		return fmt.Errorf("config: unknown exporter %q", cfg.Monitor.Exporter)
	}

	// key = host | port
	owner := make(map[string]int)

	for i, inst := range cfg.Monitor.Instances {
		if inst.Port < 0 || inst.Port > 65535 {
			return fmt.Errorf("config: instance %d: port %d out of range", i, inst.Port)
		}

		if inst.TimeoutS < 0 {
			return fmt.Errorf("config: instance %d: timeout must be >= 0", i)
		}

		if inst.ExpectedMode != "" {
			if _, ok := expectedModes[inst.ExpectedMode]; !ok {
				return fmt.Errorf("config: instance %d: expected_mode %q is not a server mode",
					i, inst.ExpectedMode)
			}
		}

		key := fmt.Sprintf("%s|%d", inst.Host, inst.Port)
		if prev, exists := owner[key]; exists {
			return fmt.Errorf("config: instances %d and %d both target %s:%d",
				prev, i, inst.Host, inst.Port)
		}
		owner[key] = i
	}

	if r := cfg.Monitor.Redis; r != nil {
		if r.Addr == "" {
			return fmt.Errorf("config: redis.addr required when redis is set")
		}
		if r.DB < 0 {
			return fmt.Errorf("config: redis.db must be >= 0")
		}
		if r.TTLMs < 0 {
			return fmt.Errorf("config: redis.ttl_ms must be >= 0")
		}
	}

	return nil
}
