// internal/parse/mntr.go
package parse

import (
	"strconv"
	"strings"
)

// InactiveSentinel is printed by a server that is alive but not
// currently serving requests (for example, mid leader election).
const InactiveSentinel = "This ZooKeeper instance is not currently serving requests"

// serverStateKey is the rewritten key that carries the role instead of
// a numeric value. It is consumed, never emitted.
const serverStateKey = "zookeeper.server.state"

// MntrResult is the parsed `mntr` response. Metrics is nil when State
// is "inactive".
type MntrResult struct {
	Metrics map[string]int64
	State   string
}

// ParseMntr parses the line-oriented `mntr` response.
//
// The first line is either the inactive sentinel or the zk_version
// banner; the banner is discarded, it is not a metric. Every remaining
// non-empty line must be exactly two whitespace-separated tokens.
func ParseMntr(raw []byte) (MntrResult, error) {
	lines := strings.Split(string(raw), "\n")

	if strings.TrimSpace(lines[0]) == InactiveSentinel {
		return MntrResult{State: "inactive"}, nil
	}

	values := make(map[string]string)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return MntrResult{}, &Error{Cmd: "mntr", Line: line, Msg: "expected key value pair"}
		}
		values[rewriteKey(fields[0])] = fields[1]
	}

	state, ok := values[serverStateKey]
	if !ok {
		return MntrResult{}, &Error{Cmd: "mntr", Msg: "missing " + serverStateKey}
	}
	delete(values, serverStateKey)

	metrics := make(map[string]int64, len(values))
	for k, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return MntrResult{}, &Error{Cmd: "mntr", Line: k + " " + v, Msg: "value is not an integer"}
		}
		metrics[k] = n
	}

	return MntrResult{Metrics: metrics, State: strings.ToLower(state)}, nil
}

// rewriteKey turns a raw mntr key into its reported metric name:
// the zk prefix becomes zookeeper and underscores become dots.
// zk_avg_latency -> zookeeper.avg.latency
func rewriteKey(k string) string {
	if strings.HasPrefix(k, "zk") {
		k = "zookeeper" + k[len("zk"):]
	}
	return strings.ReplaceAll(k, "_", ".")
}
