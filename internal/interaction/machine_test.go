package interaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/nexusai/internal/interaction"
	"github.com/zhouzirui/nexusai/internal/interaction/interactiontest"
)

func succeed(context.Context) interaction.Result {
	return interaction.Result{State: interaction.Succeeded, Redirect: "/dashboard"}
}

func TestMachineSubmitResolvesAfterDelay(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)
	defer scope.Close()

	m := interaction.NewMachine(scope)
	sub, err := m.Submit(1500*time.Millisecond, succeed)
	require.NoError(t, err)
	assert.Equal(t, interaction.Submitting, m.State())

	sched.Advance(1499 * time.Millisecond)
	select {
	case <-sub.Done():
		t.Fatal("resolved before the delay elapsed")
	default:
	}

	sched.Advance(time.Millisecond)
	res, err := sub.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, interaction.Succeeded, res.State)
	assert.Equal(t, "/dashboard", res.Redirect)
	assert.Equal(t, interaction.Succeeded, m.State())
}

func TestMachineRejectsDoubleSubmit(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)
	defer scope.Close()

	m := interaction.NewMachine(scope)
	_, err := m.Submit(time.Second, succeed)
	require.NoError(t, err)

	_, err = m.Submit(time.Second, succeed)
	assert.ErrorIs(t, err, interaction.ErrBusy)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(time.Second)
	_, err = m.Submit(time.Second, succeed)
	assert.ErrorIs(t, err, interaction.ErrSettled)
}

func TestMachineOverlapAndRearm(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)
	defer scope.Close()

	var seen []interaction.State
	m := interaction.NewMachine(scope,
		interaction.WithOverlap(),
		interaction.WithRearm(),
		interaction.OnChange(func(s interaction.State) { seen = append(seen, s) }),
	)

	_, err := m.Submit(2*time.Second, succeed)
	require.NoError(t, err)
	sched.Advance(time.Second)
	_, err = m.Submit(2*time.Second, succeed)
	require.NoError(t, err)

	sched.Advance(time.Second)
	assert.Equal(t, interaction.Submitting, m.State(), "second reply still pending")

	sched.Advance(time.Second)
	assert.Equal(t, interaction.Idle, m.State())
	assert.Equal(t, []interaction.State{interaction.Submitting, interaction.Idle}, seen)
}

func TestMachineFailReturnsToIdle(t *testing.T) {
	scope := interaction.NewScope(context.Background(), interactiontest.New())
	defer scope.Close()

	m := interaction.NewMachine(scope)
	cause := errors.New("missing fields")
	res := m.Fail(cause)

	assert.Equal(t, interaction.Failed, res.State)
	assert.Equal(t, interaction.Idle, m.State())
	assert.ErrorIs(t, m.Last().Err, cause)
}

func TestSubmitOnClosedScope(t *testing.T) {
	scope := interaction.NewScope(context.Background(), interactiontest.New())
	scope.Close()

	m := interaction.NewMachine(scope)
	_, err := m.Submit(time.Second, succeed)
	assert.ErrorIs(t, err, interaction.ErrClosed)
	assert.Equal(t, interaction.Idle, m.State())
}

func TestWaitReturnsWhenScopeReleased(t *testing.T) {
	sched := interactiontest.New()
	scope := interaction.NewScope(context.Background(), sched)

	m := interaction.NewMachine(scope)
	sub, err := m.Submit(time.Second, succeed)
	require.NoError(t, err)

	scope.Close()
	_, err = sub.Wait(context.Background())
	assert.ErrorIs(t, err, interaction.ErrClosed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", interaction.Submitting.String())
	assert.Equal(t, "unknown", interaction.State(42).String())
}
