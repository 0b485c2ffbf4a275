// internal/sink/otel.go
package sink

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OtelSink delivers through an OpenTelemetry meter. Instruments are
// created lazily per metric name and cached; metric names arrive at
// runtime (mntr keys are server-defined), so they cannot be declared
// up front.
type OtelSink struct {
	meter metric.Meter
	log   *slog.Logger

	mu       sync.Mutex
	gauges   map[string]metric.Float64Gauge
	counters map[string]metric.Int64Counter
}

func NewOtelSink(meter metric.Meter, log *slog.Logger) *OtelSink {
	if log == nil {
		log = slog.Default()
	}
	return &OtelSink{
		meter:    meter,
		log:      log,
		gauges:   make(map[string]metric.Float64Gauge),
		counters: make(map[string]metric.Int64Counter),
	}
}

func (s *OtelSink) Gauge(name string, value float64, tags []string) {
	g, err := s.gauge(name)
	if err != nil {
		s.log.Warn("gauge instrument failed", "name", name, "err", err)
		return
	}
	g.Record(context.Background(), value, metric.WithAttributes(attrs(tags)...))
}

func (s *OtelSink) Count(name string, delta int64, tags []string) {
	c, err := s.counter(name)
	if err != nil {
		s.log.Warn("counter instrument failed", "name", name, "err", err)
		return
	}
	c.Add(context.Background(), delta, metric.WithAttributes(attrs(tags)...))
}

func (s *OtelSink) Set(name, value string, tags []string) {
	c, err := s.counter(name)
	if err != nil {
		s.log.Warn("set instrument failed", "name", name, "err", err)
		return
	}
	kvs := append(attrs(tags), attribute.String("value", value))
	c.Add(context.Background(), 1, metric.WithAttributes(kvs...))
}

func (s *OtelSink) ServiceCheck(name string, status Status, message string, tags []string) {
	g, err := s.gauge(name)
	if err != nil {
		s.log.Warn("service check instrument failed", "name", name, "err", err)
		return
	}
	kvs := append(attrs(tags), attribute.String("status", status.String()))
	g.Record(context.Background(), float64(status), metric.WithAttributes(kvs...))
	s.log.Debug("service check", "name", name, "status", status.String(), "message", message)
}

// ---- instrument cache ----

func (s *OtelSink) gauge(name string) (metric.Float64Gauge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.gauges[name]; ok {
		return g, nil
	}
	g, err := s.meter.Float64Gauge(name)
	if err != nil {
		return nil, err
	}
	s.gauges[name] = g
	return g, nil
}

func (s *OtelSink) counter(name string) (metric.Int64Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.counters[name]; ok {
		return c, nil
	}
	c, err := s.meter.Int64Counter(name)
	if err != nil {
		return nil, err
	}
	s.counters[name] = c
	return c, nil
}

// attrs converts "key:value" tags into attributes. A tag without a
// colon becomes a bare key with an empty value.
func attrs(tags []string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(tags))
	for _, tag := range tags {
		k, v, _ := strings.Cut(tag, ":")
		out = append(out, attribute.String(k, v))
	}
	return out
}
