package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct {
	closed atomic.Int32
}

func (f *fakeResource) Close() {
	f.closed.Add(1)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) { c.now = c.now.Add(d) }

func TestRegistryPutGetClose(t *testing.T) {
	reg := NewRegistry[*fakeResource]("chat", time.Minute)
	res := &fakeResource{}

	reg.Put("a", res)
	got, ok := reg.Get("a")
	require.True(t, ok)
	assert.Same(t, res, got)
	assert.Equal(t, 1, reg.Len())

	assert.True(t, reg.Close("a"))
	assert.False(t, reg.Close("a"))
	assert.EqualValues(t, 1, res.closed.Load())

	_, ok = reg.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryPutReplacesAndClosesPrevious(t *testing.T) {
	reg := NewRegistry[*fakeResource]("chat", time.Minute)
	first, second := &fakeResource{}, &fakeResource{}

	reg.Put("a", first)
	reg.Put("a", second)

	assert.EqualValues(t, 1, first.closed.Load())
	assert.EqualValues(t, 0, second.closed.Load())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistrySweepExpiresIdle(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	reg := NewRegistry[*fakeResource]("dashboard", 10*time.Minute, WithClock(clock.Now))

	idle, active := &fakeResource{}, &fakeResource{}
	reg.Put("idle", idle)
	reg.Put("active", active)

	clock.Add(8 * time.Minute)
	_, ok := reg.Get("active")
	require.True(t, ok)

	clock.Add(5 * time.Minute)
	removed := reg.Sweep(clock.Now())

	assert.Equal(t, 1, removed)
	assert.EqualValues(t, 1, idle.closed.Load())
	assert.EqualValues(t, 0, active.closed.Load())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryZeroTTLNeverExpires(t *testing.T) {
	reg := NewRegistry[*fakeResource]("chat", 0)
	reg.Put("a", &fakeResource{})

	assert.Equal(t, 0, reg.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryCloseAll(t *testing.T) {
	reg := NewRegistry[*fakeResource]("chat", time.Minute)
	a, b := &fakeResource{}, &fakeResource{}
	reg.Put("a", a)
	reg.Put("b", b)

	reg.CloseAll()

	assert.Equal(t, 0, reg.Len())
	assert.EqualValues(t, 1, a.closed.Load())
	assert.EqualValues(t, 1, b.closed.Load())
}

func TestSweeperRunOnceReportsEachTarget(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	chats := NewRegistry[*fakeResource]("chat", time.Minute, WithClock(clock.Now))
	boards := NewRegistry[*fakeResource]("dashboard", time.Minute, WithClock(clock.Now))
	chats.Put("a", &fakeResource{})
	chats.Put("b", &fakeResource{})
	boards.Put("c", &fakeResource{})

	sweeper := NewSweeper(nil, time.Minute, chats, boards)
	reports := map[string][2]int{}
	sweeper.OnSwept(func(name string, removed, remaining int) {
		reports[name] = [2]int{removed, remaining}
	})

	clock.Add(2 * time.Minute)
	sweeper.RunOnce(clock.Now())

	assert.Equal(t, [2]int{2, 0}, reports["chat"])
	assert.Equal(t, [2]int{1, 0}, reports["dashboard"])
}

func TestSweeperStartRejectsNonPositiveInterval(t *testing.T) {
	sweeper := NewSweeper(nil, 0)
	require.Error(t, sweeper.Start())
}

func TestSweeperStartStop(t *testing.T) {
	sweeper := NewSweeper(nil, time.Hour)
	require.NoError(t, sweeper.Start())
	require.NoError(t, sweeper.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
	sweeper.Stop(ctx)
}
