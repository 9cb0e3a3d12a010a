package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultTracker_Start(t *testing.T) {
	tracker := &DefaultTracker{}
	op := tracker.Start("resolve path")

	require.NotNil(t, op)
	assert.Equal(t, "resolve path", op.Name)
	assert.False(t, op.StartTime.IsZero())
	assert.Equal(t, StatusInProgress, op.Status)
	assert.Same(t, op, tracker.CurrentOperation)
	assert.Len(t, tracker.History, 1)
}

func TestDefaultTracker_Complete(t *testing.T) {
	tracker := &DefaultTracker{}
	tracker.Start("resolve path")
	tracker.Complete()

	op := tracker.CurrentOperation
	assert.Equal(t, StatusCompleted, op.Status)
	assert.False(t, op.EndTime.IsZero())
	assert.GreaterOrEqual(t, op.Duration(), op.EndTime.Sub(op.StartTime))
	assert.NoError(t, op.Err)
}

func TestDefaultTracker_Error(t *testing.T) {
	tracker := &DefaultTracker{}
	tracker.Start("clean")

	testErr := errors.New("permission denied")
	tracker.Error(testErr)

	assert.Equal(t, StatusFailed, tracker.CurrentOperation.Status)
	assert.Same(t, testErr, tracker.CurrentOperation.Err)

	// A finished step is not reopened.
	tracker.Complete()
	assert.Equal(t, StatusFailed, tracker.CurrentOperation.Status)
}

func TestDefaultTracker_NoCurrentOperation(t *testing.T) {
	tracker := &DefaultTracker{}

	assert.NotPanics(t, func() {
		tracker.Complete()
		tracker.Error(errors.New("ignored"))
	})
	assert.Nil(t, tracker.CurrentOperation)
}

func TestDefaultTracker_History(t *testing.T) {
	tracker := &DefaultTracker{}
	for _, step := range []string{"resolve path", "validate url", "clean"} {
		tracker.Start(step)
		tracker.Complete()
	}

	require.Len(t, tracker.History, 3)
	assert.Equal(t, "validate url", tracker.History[1].Name)
	for _, op := range tracker.History {
		assert.Equal(t, StatusCompleted, op.Status)
	}
}

func TestLogTracker(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tracker := NewLogTracker(zap.New(core))

	tracker.Start("resolve path")
	tracker.Complete()
	tracker.Start("clean")
	tracker.Error(errors.New("boom"))
	tracker.Complete()

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "step started", entries[0].Message)
	assert.Equal(t, "step completed", entries[1].Message)
	assert.Equal(t, "resolve path", entries[1].ContextMap()["step"])
	assert.Equal(t, "step failed", entries[3].Message)
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
	assert.Len(t, tracker.History, 2)
}

func TestNewLogTracker_NilLogger(t *testing.T) {
	tracker := NewLogTracker(nil)

	assert.NotPanics(t, func() {
		tracker.Start("step")
		tracker.Complete()
	})
}
