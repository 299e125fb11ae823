package client

import (
	"context"
	"time"
)

// DefaultHealthInterval is the time between health probes.
const DefaultHealthInterval = 60 * time.Second

const maxProbeTimeout = 10 * time.Second

// HealthChecker probes the service.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthStatus is the outcome of one probe.
type HealthStatus struct {
	Healthy   bool
	Err       error
	CheckedAt time.Time
}

// HealthMonitor probes the service on a fixed interval.
type HealthMonitor struct {
	checker  HealthChecker
	interval time.Duration
	report   func(HealthStatus)
}

// NewHealthMonitor creates a HealthMonitor. A non-positive interval uses
// DefaultHealthInterval.
func NewHealthMonitor(checker HealthChecker, interval time.Duration, report func(HealthStatus)) *HealthMonitor {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	return &HealthMonitor{checker: checker, interval: interval, report: report}
}

// Run probes immediately and then once per interval until ctx is done.
func (m *HealthMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *HealthMonitor) probe(ctx context.Context) {
	timeout := m.interval
	if timeout > maxProbeTimeout {
		timeout = maxProbeTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := m.checker.Health(probeCtx)
	if ctx.Err() != nil {
		return
	}
	m.report(HealthStatus{Healthy: err == nil, Err: err, CheckedAt: time.Now()})
}
