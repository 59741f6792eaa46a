package pooled

import (
	"context"
	"testing"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// requirePanicsIs runs fn and requires it to panic with an error matching target.
func requirePanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not match %v", err, target)
	}()
	fn()
}

// newTestPool returns an isolated pool so metrics are not shared between tests.
func newTestPool[T any](t testing.TB) *Pool[T] {
	return NewPool[T](Config{Logger: zaptest.NewLogger(t)})
}

func newContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), zaptest.NewLogger(t)))
	t.Cleanup(cancel)
	return ctx
}
