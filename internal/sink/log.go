// internal/sink/log.go
package sink

import "log/slog"

// LogSink writes every emission as a structured log line. Useful for
// dry runs and local debugging.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Gauge(name string, value float64, tags []string) {
	s.log.Info("gauge", "name", name, "value", value, "tags", tags)
}

func (s *LogSink) Count(name string, delta int64, tags []string) {
	s.log.Info("count", "name", name, "delta", delta, "tags", tags)
}

func (s *LogSink) Set(name, value string, tags []string) {
	s.log.Info("set", "name", name, "value", value, "tags", tags)
}

func (s *LogSink) ServiceCheck(name string, status Status, message string, tags []string) {
	s.log.Info("service check", "name", name, "status", status.String(), "message", message, "tags", tags)
}
