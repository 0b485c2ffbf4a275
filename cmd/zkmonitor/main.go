// cmd/zkmonitor/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/tamzrod/zk-monitor/internal/check"
	"github.com/tamzrod/zk-monitor/internal/config"
	"github.com/tamzrod/zk-monitor/internal/sink"
	"github.com/tamzrod/zk-monitor/internal/state"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: zkmonitor <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx := context.Background()

	// --------------------
	// Metrics sink + state store
	// --------------------

	sk, shutdown, err := buildSink(ctx, cfg.Monitor.Exporter)
	if err != nil {
		log.Fatalf("sink build failed: %v", err)
	}
	defer shutdown()

	store := buildStore(cfg)

	// --------------------
	// Per-instance checks
	// --------------------

	interval := time.Duration(cfg.Monitor.IntervalMs) * time.Millisecond

	for _, inst := range cfg.Monitor.Instances {
		chk := check.Build(inst, sk, store, nil)
		go chk.RunEvery(ctx, interval)
	}

	// --------------------
	// Block forever (daemon-safe, no deadlock)
	// --------------------
	for {
		time.Sleep(time.Hour)
	}
}

// buildSink selects the metric delivery backend.
func buildSink(ctx context.Context, exporter string) (sink.Sink, func(), error) {
	switch exporter {
	case "log":
		return sink.NewLogSink(nil), func() {}, nil

	case "stdout":
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stdout))
		if err != nil {
			return nil, nil, err
		}
		provider := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		)
		shutdown := func() { _ = provider.Shutdown(ctx) }
		return sink.NewOtelSink(provider.Meter("zkmonitor"), nil), shutdown, nil

	default:
		return nil, nil, fmt.Errorf("unknown exporter %q", exporter)
	}
}

// buildStore selects the last-state store: Redis when configured,
// process memory otherwise.
func buildStore(cfg *config.Config) state.Store {
	rc := cfg.Monitor.Redis
	if rc == nil {
		return state.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	return state.NewRedisStore(client, "zkmonitor:", time.Duration(rc.TTLMs)*time.Millisecond)
}
