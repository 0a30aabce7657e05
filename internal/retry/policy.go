// Package retry runs operations with a bounded backoff.
package retry

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
)

// Policy encapsulates retry/backoff settings for transient failures.
// It is immutable after construction.
type Policy struct {
	Mode       config.RetryBackoffMode
	Initial    time.Duration
	Max        time.Duration
	MaxRetries int // attempts after the first failure
}

// DefaultPolicy is exponential from 500ms, capped at 10s, with 3 retries.
func DefaultPolicy() Policy {
	return Policy{Mode: config.RetryBackoffExponential, Initial: 500 * time.Millisecond, Max: 10 * time.Second, MaxRetries: 3}
}

// FromConfig builds a policy from configuration; zero values keep the defaults
// except MaxRetries, where zero means a single attempt.
func FromConfig(rc config.RetryConfig) Policy {
	p := DefaultPolicy()
	p.MaxRetries = max(rc.MaxRetries, 0)
	if rc.Initial > 0 {
		p.Initial = rc.Initial
	}
	if rc.Max > 0 {
		p.Max = rc.Max
	}
	switch rc.Backoff {
	case config.RetryBackoffFixed, config.RetryBackoffLinear, config.RetryBackoffExponential:
		p.Mode = rc.Backoff
	}
	if p.Initial > p.Max {
		p.Initial = p.Max
	}
	return p
}

// Delay returns the wait before retry n (1-based).
func (p Policy) Delay(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	var d time.Duration
	switch p.Mode {
	case config.RetryBackoffFixed:
		return p.Initial
	case config.RetryBackoffExponential:
		d = p.Initial << (n - 1)
		if d <= 0 { // overflow
			return p.Max
		}
	default:
		d = time.Duration(n) * p.Initial
	}
	return min(d, p.Max)
}

// Do calls op until it succeeds, the retries are used up or ctx ends. The
// last error is returned.
func Do(ctx context.Context, p Policy, op func(attempt int) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = op(attempt); err == nil {
			return nil
		}
		if attempt >= p.MaxRetries {
			return err
		}
		t := time.NewTimer(p.Delay(attempt + 1))
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%w (retry aborted: %w)", err, ctx.Err())
		case <-t.C:
		}
	}
}
