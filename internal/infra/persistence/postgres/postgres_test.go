package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	samples := []sql.DBStats{
		{},
		{WaitCount: 0, OpenConnections: 2},
		{WaitCount: 2, WaitDuration: 10 * time.Millisecond, OpenConnections: 10, InUse: 10, MaxOpenConnections: 10},
		{WaitCount: 3, WaitDuration: 110 * time.Millisecond, OpenConnections: 10, InUse: 10, MaxOpenConnections: 10},
	}
	next := 0
	stats := func() sql.DBStats {
		s := samples[next]
		next++

		return s
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	monitor := newPoolMonitor(logger, stats)

	monitor.observe(context.Background())
	assert.Empty(t, buf.String(), "no waits, nothing logged")

	monitor.observe(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avgWait=5ms")
	buf.Reset()

	monitor.observe(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
	assert.Contains(t, buf.String(), "waited=100ms")
}
