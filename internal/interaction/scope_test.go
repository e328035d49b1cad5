package interaction_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/interaction/interactiontest"
)

func TestScopeCloseStopsPendingTimers(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)

	var fired atomic.Int32
	require.True(t, scope.After(time.Second, func(context.Context) { fired.Add(1) }))
	require.True(t, scope.After(2*time.Second, func(context.Context) { fired.Add(1) }))
	assert.Equal(t, 2, scope.Pending())

	scope.Close()
	sched.Advance(5 * time.Second)

	assert.Zero(t, fired.Load())
	assert.Zero(t, scope.Pending())
	assert.True(t, scope.Closed())
	assert.False(t, scope.After(time.Second, func(context.Context) { fired.Add(1) }))
}

func TestScopeReleasedWithParentContext(t *testing.T) {
	sched := interactiontest.New()
	parent, cancel := context.WithCancel(context.Background())
	scope := interaction.NewScope(parent, sched)

	var fired atomic.Int32
	scope.After(time.Second, func(context.Context) { fired.Add(1) })
	cancel()

	select {
	case <-scope.Done():
	case <-time.After(time.Second):
		t.Fatal("scope not released after parent cancel")
	}

	sched.Advance(time.Second)
	assert.Zero(t, fired.Load())
}

func TestScopeCallbackContextCancelledOnClose(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)

	var got context.Context
	scope.After(time.Millisecond, func(ctx context.Context) { got = ctx })
	sched.Advance(time.Millisecond)
	require.NotNil(t, got)
	assert.NoError(t, got.Err())

	scope.Close()
	assert.ErrorIs(t, got.Err(), context.Canceled)
}

func TestScopeSystemSchedulerFires(t *testing.T) {
	scope := interaction.NewScope(context.Background(), nil)
	defer scope.Close()

	done := make(chan struct{})
	scope.After(time.Millisecond, func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
