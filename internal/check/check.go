// internal/check/check.go
package check

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tamzrod/zk-monitor/internal/fourletter"
	"github.com/tamzrod/zk-monitor/internal/parse"
	"github.com/tamzrod/zk-monitor/internal/sink"
	"github.com/tamzrod/zk-monitor/internal/state"
)

// Sender issues one four-letter command and returns the full response.
// The check depends on the command round-trip only.
type Sender interface {
	Send(ctx context.Context, cmd string) ([]byte, error)
}

const (
	metricTimeouts         = "zookeeper.timeouts"
	metricClientExceptions = "zookeeper.client_exceptions"
)

// Check runs the ruok -> stat -> mntr sequence against one instance
// and turns the outcomes into gauges, counters, and service checks.
// All entities are built fresh per cycle; only the last reported
// instance state survives, in the Store.
type Check struct {
	instance     string // host:port, the instance key everywhere
	expectedMode string
	tags         []string
	scTags       []string

	sender Sender
	sink   sink.Sink
	store  state.Store
	log    *slog.Logger
}

// Config is the per-instance runtime config the check needs.
type Config struct {
	Host         string
	Port         int
	ExpectedMode string
	Tags         []string
}

func New(cfg Config, sender Sender, sk sink.Sink, store state.Store, log *slog.Logger) *Check {
	if log == nil {
		log = slog.Default()
	}
	return &Check{
		instance:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		expectedMode: strings.TrimSpace(cfg.ExpectedMode),
		tags:         cfg.Tags,
		scTags: []string{
			fmt.Sprintf("host:%s", cfg.Host),
			fmt.Sprintf("port:%d", cfg.Port),
		},
		sender: sender,
		sink:   sk,
		store:  store,
		log:    log,
	}
}

// Run performs exactly one check cycle.
//
// Only a failed `ruok` is fatal: the server should not respond at all
// if it is not OK, so nothing else in the cycle can be trusted. `stat`
// and `mntr` failures are folded into states and counters instead.
func (c *Check) Run(ctx context.Context) error {
	raw, err := c.sender.Send(ctx, "ruok")
	if err != nil {
		c.sink.Count(metricTimeouts, 1, c.tags)
		c.sink.ServiceCheck("zookeeper.ruok", sink.Critical,
			"No response from `ruok` command", c.scTags)
		return err
	}

	ruok := firstLine(raw)
	status := sink.Warning
	if ruok == "imok" {
		status = sink.OK
	}
	c.sink.ServiceCheck("zookeeper.ruok", status,
		fmt.Sprintf("Response from the server: %s", ruok), c.scTags)

	version := c.runStat(ctx)

	if parse.SupportsMntr(version) {
		c.runMntr(ctx)
	}

	return nil
}

// runStat fetches and reports `stat`. It returns the server version,
// or "" when no version could be confirmed; `mntr` is gated on it.
func (c *Check) runStat(ctx context.Context) string {
	raw, err := c.sender.Send(ctx, "stat")
	if err != nil {
		if fourletter.IsTransport(err) {
			c.sink.Count(metricTimeouts, 1, c.tags)
			c.setInstanceState(ctx, state.Down)
		} else {
			c.log.Error("stat command failed", "instance", c.instance, "err", err)
			c.sink.Count(metricClientExceptions, 1, c.tags)
			c.setInstanceState(ctx, state.Unknown)
		}
		return ""
	}

	res, err := parse.ParseStat(raw)
	if err != nil {
		c.log.Error("stat response not parsable", "instance", c.instance, "err", err)
		c.sink.Count(metricClientExceptions, 1, c.tags)
		c.setInstanceState(ctx, state.Unknown)
		return ""
	}

	st := state.FromMode(res.Mode)
	if st != state.Inactive {
		tags := append(append([]string{}, c.tags...), res.Tags...)
		for _, m := range res.Metrics {
			c.sink.Gauge(m.Name, float64(m.Value), tags)
		}
	}
	c.setInstanceState(ctx, st)

	if c.expectedMode != "" {
		if res.Mode == c.expectedMode {
			c.sink.ServiceCheck("zookeeper.mode", sink.OK,
				fmt.Sprintf("Server is in %s mode", res.Mode), c.scTags)
		} else {
			c.sink.ServiceCheck("zookeeper.mode", sink.Critical,
				fmt.Sprintf("Server is in %s mode but check expects %s mode",
					res.Mode, c.expectedMode), c.scTags)
		}
	}

	return res.Version
}

// runMntr fetches and reports `mntr`. Failures here never abort the
// cycle; they are counted and the cycle moves on. The mntr state rides
// along as a mode tag and does not overwrite the stat-derived
// instance state.
func (c *Check) runMntr(ctx context.Context) {
	raw, err := c.sender.Send(ctx, "mntr")
	if err != nil {
		if fourletter.IsTransport(err) {
			c.sink.Count(metricTimeouts, 1, c.tags)
		} else {
			c.log.Error("mntr command failed", "instance", c.instance, "err", err)
			c.sink.Count(metricClientExceptions, 1, c.tags)
		}
		return
	}

	res, err := parse.ParseMntr(raw)
	if err != nil {
		c.log.Error("mntr response not parsable", "instance", c.instance, "err", err)
		c.sink.Count(metricClientExceptions, 1, c.tags)
		return
	}
	if res.State == "inactive" {
		return
	}

	tags := append(append([]string{}, c.tags...), "mode:"+res.State)

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c.sink.Gauge(name, float64(res.Metrics[name]), tags)
	}
}

// setInstanceState records the classified state and emits the presence
// gauges: 1 for the current state, 0 for every other member, so the
// seven gauges always sum to exactly 1 per instance per cycle.
func (c *Check) setInstanceState(ctx context.Context, st state.State) {
	prev, ok, err := c.store.Get(ctx, c.instance)
	if err != nil {
		c.log.Warn("state store read failed", "instance", c.instance, "err", err)
	}
	if ok && prev != st {
		c.log.Info("instance state changed",
			"instance", c.instance, "from", prev.String(), "to", st.String())
	}
	if err := c.store.Set(ctx, c.instance, st); err != nil {
		c.log.Warn("state store write failed", "instance", c.instance, "err", err)
	}

	c.sink.Set("zookeeper.instances", c.instance, []string{"mode:" + st.String()})

	for _, s := range state.All() {
		v := 0.0
		if s == st {
			v = 1.0
		}
		c.sink.Gauge("zookeeper.instances."+s.String(), v, c.tags)
	}
}

// firstLine returns the first response line without its line ending.
func firstLine(raw []byte) string {
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimRight(string(raw), "\r")
}
