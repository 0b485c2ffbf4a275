// internal/sink/sink.go
package sink

// Status is the tri-state service check outcome, distinct from
// numeric gauges.
type Status int

const (
	OK Status = iota
	Warning
	Critical
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Warning:
		return "warning"
	default:
		return "critical"
	}
}

// Sink receives everything a check emits. Delivery only: no logic, no
// aggregation, no memory of past cycles. Implementations must be safe
// for concurrent use across check goroutines.
type Sink interface {
	// Gauge reports a point-in-time numeric value.
	Gauge(name string, value float64, tags []string)

	// Count increments a monotonic counter.
	Count(name string, delta int64, tags []string)

	// Set reports membership of a value in a named set
	// (e.g. which instance currently holds which role).
	Set(name, value string, tags []string)

	// ServiceCheck reports a tri-state health signal.
	ServiceCheck(name string, status Status, message string, tags []string)
}
