package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paintmart/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fastCfg(maxAttempts int, shouldRetry retry.ShouldRetry) retry.Config {
	return retry.Config{
		MaxAttempts: maxAttempts,
		Backoff:     retry.LinearBackoff(time.Millisecond),
		ShouldRetry: shouldRetry,
	}
}

func TestDoWithResult(t *testing.T) {
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		v, err := retry.DoWithResult(t.Context(), fastCfg(3, nil),
			func() (int, error) {
				calls++
				return 42, nil
			})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		v, err := retry.DoWithResult(t.Context(), fastCfg(3, nil),
			func() (string, error) {
				calls++
				if calls < 3 {
					return "", errBoom
				}
				return "ok", nil
			})
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
		assert.Equal(t, 3, calls)
	})

	t.Run("NotRetryableStopsImmediately", func(t *testing.T) {
		calls := 0
		noRetry := func(error) bool { return false }
		_, err := retry.DoWithResult(t.Context(), fastCfg(5, noRetry),
			func() (int, error) {
				calls++
				return 0, errBoom
			})
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 1, calls)
	})

	t.Run("ExhaustedReturnsLastError", func(t *testing.T) {
		calls := 0
		_, err := retry.DoWithResult(t.Context(), fastCfg(2, nil),
			func() (int, error) {
				calls++
				return 0, errBoom
			})
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, 2, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		calls := 0
		_, err := retry.DoWithResult(ctx, fastCfg(3, nil),
			func() (int, error) {
				calls++
				return 0, errBoom
			})
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})
}

func TestDo(t *testing.T) {
	t.Run("PropagatesError", func(t *testing.T) {
		err := retry.Do(t.Context(), fastCfg(2, nil), func() error {
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
	})
}
