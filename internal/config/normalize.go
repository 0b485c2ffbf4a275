// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Monitor.IntervalMs == 0 {
		cfg.Monitor.IntervalMs = 15000
	}
	if cfg.Monitor.Exporter == "" {
		cfg.Monitor.Exporter = "stdout"
	}

	for i := range cfg.Monitor.Instances {
		inst := &cfg.Monitor.Instances[i]

		if inst.Host == "" {
			inst.Host = "localhost"
		}
		if inst.Port == 0 {
			inst.Port = 2181
		}
		if inst.TimeoutS == 0 {
			inst.TimeoutS = 3.0
		}
	}
}
