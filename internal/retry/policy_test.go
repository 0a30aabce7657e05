package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/coffeedocs/internal/config"
)

func TestFromConfig(t *testing.T) {
	p := FromConfig(config.RetryConfig{Backoff: config.RetryBackoffFixed, Initial: 5 * time.Second, Max: 2 * time.Second, MaxRetries: 5})
	require.Equal(t, Policy{Mode: config.RetryBackoffFixed, Initial: 2 * time.Second, Max: 2 * time.Second, MaxRetries: 5}, p)

	p = FromConfig(config.RetryConfig{})
	require.Equal(t, config.RetryBackoffExponential, p.Mode)
	require.Equal(t, 0, p.MaxRetries)
}

func TestDelayModes(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		mode config.RetryBackoffMode
		want []time.Duration
	}{
		{config.RetryBackoffFixed, []time.Duration{100 * ms, 100 * ms, 100 * ms, 100 * ms}},
		{config.RetryBackoffLinear, []time.Duration{100 * ms, 200 * ms, 250 * ms, 250 * ms}},
		{config.RetryBackoffExponential, []time.Duration{100 * ms, 200 * ms, 250 * ms, 250 * ms}},
	}
	for _, tt := range tests {
		p := Policy{Mode: tt.mode, Initial: 100 * ms, Max: 250 * ms}
		for i, want := range tt.want {
			require.Equal(t, want, p.Delay(i+1), "%s attempt %d", tt.mode, i+1)
		}
	}
	require.Zero(t, DefaultPolicy().Delay(0))
	require.Equal(t, 10*time.Second, DefaultPolicy().Delay(200))
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	p := Policy{Mode: config.RetryBackoffFixed, Initial: time.Millisecond, Max: time.Millisecond, MaxRetries: 3}
	calls := 0
	err := Do(context.Background(), p, func(int) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestDoGivesUp(t *testing.T) {
	p := Policy{Mode: config.RetryBackoffFixed, Initial: time.Millisecond, Max: time.Millisecond, MaxRetries: 2}
	var attempts []int
	err := Do(context.Background(), p, func(a int) error {
		attempts = append(attempts, a)
		return errors.New("down")
	})
	require.EqualError(t, err, "down")
	require.Equal(t, []int{0, 1, 2}, attempts)
}

func TestDoStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Policy{Mode: config.RetryBackoffFixed, Initial: time.Hour, Max: time.Hour, MaxRetries: 5}
	err := Do(ctx, p, func(int) error { return errors.New("down") })
	require.ErrorIs(t, err, context.Canceled)
}
