package resilience

import "time"

// Config tunes the per-operation circuit breaker. Calls are never retried;
// the breaker only stops a run from hammering an upstream that keeps failing.
type Config struct {
	Enabled             bool
	MinRequests         uint32
	FailureRatio        float64
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenMaxCalls    uint32
}

func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		MinRequests:         5,
		FailureRatio:        0.6,
		ConsecutiveFailures: 3,
		OpenTimeout:         30 * time.Second,
		HalfOpenMaxCalls:    1,
	}
}

func (c Config) normalize() Config {
	out := c
	def := DefaultConfig()

	if out.MinRequests == 0 {
		out.MinRequests = def.MinRequests
	}
	if out.FailureRatio <= 0 || out.FailureRatio > 1 {
		out.FailureRatio = def.FailureRatio
	}
	if out.ConsecutiveFailures == 0 {
		out.ConsecutiveFailures = def.ConsecutiveFailures
	}
	if out.OpenTimeout <= 0 {
		out.OpenTimeout = def.OpenTimeout
	}
	if out.HalfOpenMaxCalls == 0 {
		out.HalfOpenMaxCalls = def.HalfOpenMaxCalls
	}

	return out
}
