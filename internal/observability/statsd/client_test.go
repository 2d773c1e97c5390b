package statsd

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" backend/request ": "backend_request",
		"foo..bar":          "foo.bar",
		"multi  space":      "multi__space",
		"a:b|c":             "a_b_c",
		"..":                "",
	}
	for input, want := range tests {
		assert.Equal(t, want, normalizeMetricName(input), "input %q", input)
	}
}

func TestEncodeTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{"env": "prod", " service ": " console "}
	local := map[string]string{"env": "dev", "route": "/api/tasks/", "": "dropped"}
	assert.Equal(t, "|#env:dev,route:/api/tasks/,service:console", encodeTags(global, local))
	assert.Equal(t, "", encodeTags(nil, nil))
}

func TestClient_DisabledDropsMetrics(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:8125"})
	require.NoError(t, err)
	assert.False(t, c.Enabled())
	c.Count("x", 1, nil)
	require.NoError(t, c.Close())

	var nilClient *Client
	nilClient.Timing("x", time.Second, nil)
	assert.False(t, nilClient.Enabled())
}

func TestClient_WritesLineProtocol(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen unavailable: %v", err)
	}
	t.Cleanup(func() { _ = pc.Close() })

	c, err := NewClient(Config{
		Enabled:    true,
		Address:    pc.LocalAddr().String(),
		Prefix:     ".crawladmin.",
		GlobalTags: map[string]string{"env": "test"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.True(t, c.Enabled())

	c.Count("backend.request", 2, map[string]string{"status": "200"})

	buf := make([]byte, 512)
	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "crawladmin.backend.request:2|c|#env:test,status:200", strings.TrimSpace(string(buf[:n])))
}
