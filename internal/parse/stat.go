// internal/parse/stat.go
package parse

import (
	"strconv"
	"strings"
)

// Metric is one named gauge value in emission order.
type Metric struct {
	Name  string
	Value int64
}

// StatResult carries everything extracted from one `stat` response.
// Metrics and Tags are nil when the response was not recognizable as
// stat output at all; Mode is "inactive" in that case.
type StatResult struct {
	Metrics []Metric
	Tags    []string
	Mode    string
	Version string
}

// ParseStat parses the fixed-position `stat` response.
//
// The grammar, in order: version banner, Clients: header plus one line
// per client terminated by a blank line, Latency min/avg/max, Received,
// Sent, Connections (only from 3.4.4 on), Outstanding, Zxid, Mode,
// Node count. An unmatched version banner folds into an inactive
// result; any later deviation is an *Error.
func ParseStat(raw []byte) (StatResult, error) {
	lines := newLineScanner(raw, "stat")

	first, _ := lines.next()
	major, minor, patch, ok := matchVersionLine(first)
	if !ok {
		// Not a stat-capable response. A server mid-election or a
		// non-ZooKeeper peer answers this way.
		return StatResult{Mode: "inactive"}, nil
	}

	res := StatResult{Version: major + "." + minor + "." + patch}

	ver, verOK := ParseVersion(res.Version)
	hasConnections := verOK && ver.AtLeast(connectionsThreshold)

	// Clients: header, then one line per connected client. A blank
	// line ends the list. The count is the connections fallback for
	// servers that predate the explicit field.
	if _, ok := lines.next(); !ok {
		return StatResult{}, lines.eof()
	}
	clients := int64(0)
	for {
		line, ok := lines.next()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		clients++
	}

	// Latency min/avg/max: -10/0/20007
	value, err := lines.value()
	if err != nil {
		return StatResult{}, err
	}
	triple := strings.Split(value, "/")
	if len(triple) != 3 {
		return StatResult{}, &Error{Cmd: "stat", Line: value, Msg: "expected min/avg/max triple"}
	}
	for i, name := range []string{"zookeeper.latency.min", "zookeeper.latency.avg", "zookeeper.latency.max"} {
		n, err := parseInt(triple[i])
		if err != nil {
			return StatResult{}, err
		}
		res.Metrics = append(res.Metrics, Metric{name, n})
	}

	// Received: / Sent: byte counters.
	for _, name := range []string{"zookeeper.bytes_received", "zookeeper.bytes_sent"} {
		n, err := lines.intValue()
		if err != nil {
			return StatResult{}, err
		}
		res.Metrics = append(res.Metrics, Metric{name, n})
	}

	connections := clients
	if hasConnections {
		n, err := lines.intValue()
		if err != nil {
			return StatResult{}, err
		}
		connections = n
	}
	res.Metrics = append(res.Metrics, Metric{"zookeeper.connections", connections})

	// Outstanding: reported under two names. bytes_outstanding is a
	// historical misnomer kept so existing dashboards don't go blank.
	outstanding, err := lines.intValue()
	if err != nil {
		return StatResult{}, err
	}
	res.Metrics = append(res.Metrics,
		Metric{"zookeeper.bytes_outstanding", outstanding},
		Metric{"zookeeper.outstanding_requests", outstanding},
	)

	// Zxid: 0x1034799c7
	value, err = lines.value()
	if err != nil {
		return StatResult{}, err
	}
	zxid, err2 := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 64)
	if err2 != nil {
		return StatResult{}, &Error{Cmd: "stat", Line: value, Msg: "zxid is not a 64-bit hex value"}
	}
	epoch, count := SplitZxid(zxid)
	res.Metrics = append(res.Metrics,
		Metric{"zookeeper.zxid.epoch", int64(epoch)},
		Metric{"zookeeper.zxid.count", int64(count)},
	)

	// Mode: leader
	value, err = lines.value()
	if err != nil {
		return StatResult{}, err
	}
	res.Mode = strings.ToLower(value)
	res.Tags = []string{"mode:" + res.Mode}

	// Node count: 487
	nodes, err := lines.intValue()
	if err != nil {
		return StatResult{}, err
	}
	res.Metrics = append(res.Metrics, Metric{"zookeeper.nodes", nodes})

	return res, nil
}

// ---- line scanner ----

// lineScanner walks a response buffer line by line. It owns the bytes
// it was handed; there is no rewinding.
type lineScanner struct {
	lines []string
	pos   int
	cmd   string
}

func newLineScanner(raw []byte, cmd string) *lineScanner {
	return &lineScanner{lines: strings.Split(string(raw), "\n"), cmd: cmd}
}

func (s *lineScanner) next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := strings.TrimRight(s.lines[s.pos], "\r")
	s.pos++
	return line, true
}

// value reads the next line and returns everything after the first
// colon, trimmed. The key itself is positional and not checked.
func (s *lineScanner) value() (string, error) {
	line, ok := s.next()
	if !ok {
		return "", s.eof()
	}
	_, v, found := strings.Cut(line, ":")
	if !found {
		return "", &Error{Cmd: s.cmd, Line: line, Msg: "expected key: value"}
	}
	return strings.TrimSpace(v), nil
}

func (s *lineScanner) intValue() (int64, error) {
	v, err := s.value()
	if err != nil {
		return 0, err
	}
	return parseInt(v)
}

func (s *lineScanner) eof() error {
	return &Error{Cmd: s.cmd, Msg: "unexpected end of response"}
}

func parseInt(v string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, &Error{Cmd: "stat", Line: v, Msg: "value is not an integer"}
	}
	return n, nil
}
