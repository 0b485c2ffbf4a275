// internal/parse/stat_test.go
package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statPre344 is the documented 3.2.2 response shape: no Connections
// field, six connected clients.
const statPre344 = `Zookeeper version: 3.2.2--1, built on 03/16/2010 07:31 GMT
Clients:
 /10.42.114.160:32634[1](queued=0,recved=12,sent=0)
 /10.37.137.74:21873[1](queued=0,recved=53613,sent=0)
 /10.37.137.74:21876[1](queued=0,recved=57436,sent=0)
 /10.115.77.32:32990[1](queued=0,recved=16,sent=0)
 /10.37.137.74:21891[1](queued=0,recved=55011,sent=0)
 /10.37.137.74:21797[1](queued=0,recved=19431,sent=0)

Latency min/avg/max: -10/0/20007
Received: 101032173
Sent: 0
Outstanding: 0
Zxid: 0x1034799c7
Mode: leader
Node count: 487
`

const stat345 = `Zookeeper version: 3.4.5-cdh4.4.0--1, built on 09/04/2013 01:46 GMT
Clients:
 /127.0.0.1:45012[1](queued=0,recved=1,sent=0)

Latency min/avg/max: 0/1/12
Received: 44
Sent: 43
Connections: 2
Outstanding: 0
Zxid: 0x500000017
Mode: follower
Node count: 8
`

func metricValue(t *testing.T, res StatResult, name string) int64 {
	t.Helper()
	for _, m := range res.Metrics {
		if m.Name == name {
			return m.Value
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestParseStat_Pre344(t *testing.T) {
	res, err := ParseStat([]byte(statPre344))
	require.NoError(t, err)

	assert.Equal(t, "3.2.2", res.Version)
	assert.Equal(t, "leader", res.Mode)
	assert.Equal(t, []string{"mode:leader"}, res.Tags)

	assert.Equal(t, int64(-10), metricValue(t, res, "zookeeper.latency.min"))
	assert.Equal(t, int64(0), metricValue(t, res, "zookeeper.latency.avg"))
	assert.Equal(t, int64(20007), metricValue(t, res, "zookeeper.latency.max"))
	assert.Equal(t, int64(101032173), metricValue(t, res, "zookeeper.bytes_received"))
	assert.Equal(t, int64(0), metricValue(t, res, "zookeeper.bytes_sent"))
	assert.Equal(t, int64(0), metricValue(t, res, "zookeeper.bytes_outstanding"))
	assert.Equal(t, int64(0), metricValue(t, res, "zookeeper.outstanding_requests"))
	assert.Equal(t, int64(487), metricValue(t, res, "zookeeper.nodes"))

	// No explicit Connections field before 3.4.4: the client-line
	// count stands in.
	assert.Equal(t, int64(6), metricValue(t, res, "zookeeper.connections"))

	assert.Equal(t, int64(1), metricValue(t, res, "zookeeper.zxid.epoch"))
	assert.Equal(t, int64(55024071), metricValue(t, res, "zookeeper.zxid.count"))
}

func TestParseStat_ExplicitConnectionsFrom344(t *testing.T) {
	res, err := ParseStat([]byte(stat345))
	require.NoError(t, err)

	assert.Equal(t, "3.4.5", res.Version)
	assert.Equal(t, "follower", res.Mode)

	// The explicit field wins over the one client line listed.
	assert.Equal(t, int64(2), metricValue(t, res, "zookeeper.connections"))
	assert.Equal(t, int64(5), metricValue(t, res, "zookeeper.zxid.epoch"))
	assert.Equal(t, int64(23), metricValue(t, res, "zookeeper.zxid.count"))
}

func TestParseStat_UnrecognizableIsInactive(t *testing.T) {
	res, err := ParseStat([]byte("mntr is not executed because it is not in the whitelist.\n"))
	require.NoError(t, err)

	assert.Equal(t, "inactive", res.Mode)
	assert.Nil(t, res.Metrics)
	assert.Nil(t, res.Tags)
	assert.Empty(t, res.Version)
}

func TestParseStat_MalformedLineFails(t *testing.T) {
	bad := `Zookeeper version: 3.2.2--1, built on 03/16/2010 07:31 GMT
Clients:

Latency without any colon
`
	_, err := ParseStat([]byte(bad))
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "stat", perr.Cmd)
}

func TestParseStat_TruncatedFails(t *testing.T) {
	bad := `Zookeeper version: 3.2.2--1, built on 03/16/2010 07:31 GMT
Clients:

Latency min/avg/max: 0/0/0
Received: 1
`
	_, err := ParseStat([]byte(bad))
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestSplitZxid(t *testing.T) {
	epoch, count := SplitZxid(0x1034799c7)
	assert.Equal(t, int32(1), epoch)
	assert.Equal(t, int32(55024071), count)

	// Both halves are two's-complement.
	epoch, count = SplitZxid(0xffffffff00000000)
	assert.Equal(t, int32(-1), epoch)
	assert.Equal(t, int32(0), count)
}
