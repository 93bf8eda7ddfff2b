package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_HappyPath(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, StateIdle, tr.State())

	require.NoError(t, tr.Begin())
	assert.Equal(t, StatePending, tr.State())

	require.NoError(t, tr.Succeed())
	assert.Equal(t, StateSuccess, tr.State())

	tr.Reset()
	assert.Equal(t, StateIdle, tr.State())
}

func TestTracker_FailureKeepsMessage(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Begin())
	require.NoError(t, tr.Fail("File locked"))

	assert.Equal(t, StateError, tr.State())
	assert.Equal(t, "File locked", tr.LastError())

	// starting a new mutation clears the old failure
	require.NoError(t, tr.Begin())
	assert.Empty(t, tr.LastError())
}

func TestTracker_RefusesDoubleBegin(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Begin())
	assert.ErrorIs(t, tr.Begin(), ErrInvalidTransition)
}

func TestTracker_RefusesTerminalWithoutPending(t *testing.T) {
	tr := NewTracker()
	assert.ErrorIs(t, tr.Succeed(), ErrInvalidTransition)
	assert.ErrorIs(t, tr.Fail("x"), ErrInvalidTransition)
}

func TestTracker_ResetIgnoredWhilePending(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Begin())
	tr.Reset()
	assert.Equal(t, StatePending, tr.State())
}
