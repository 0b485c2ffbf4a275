// internal/check/builder.go
package check

import (
	"log/slog"

	cfg "github.com/tamzrod/zk-monitor/internal/config"
	"github.com/tamzrod/zk-monitor/internal/fourletter"
	"github.com/tamzrod/zk-monitor/internal/sink"
	"github.com/tamzrod/zk-monitor/internal/state"
)

// Build wires one instance config into a runnable check. Each command
// dials its own connection, so there is no client lifecycle to own.
func Build(inst cfg.InstanceConfig, sk sink.Sink, store state.Store, log *slog.Logger) *Check {
	client := fourletter.New(inst.Host, inst.Port, inst.Timeout())

	return New(
		Config{
			Host:         inst.Host,
			Port:         inst.Port,
			ExpectedMode: inst.ExpectedMode,
			Tags:         inst.Tags,
		},
		client,
		sk,
		store,
		log,
	)
}
