// Package progress records the scaffolding steps as they run.
package progress

import (
	"time"

	"go.uber.org/zap"
)

// Step statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Tracker interface defines methods for tracking step progress
type Tracker interface {
	Start(step string) *Operation
	Complete()
	Error(err error)
}

// Operation represents a tracked step
type Operation struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Err       error
}

// Duration returns how long the step ran, or has been running.
func (o *Operation) Duration() time.Duration {
	if o.EndTime.IsZero() {
		return time.Since(o.StartTime)
	}
	return o.EndTime.Sub(o.StartTime)
}

// DefaultTracker keeps every step in memory
type DefaultTracker struct {
	CurrentOperation *Operation
	History          []*Operation
}

// Start begins tracking a new step
func (t *DefaultTracker) Start(step string) *Operation {
	t.CurrentOperation = &Operation{
		Name:      step,
		StartTime: time.Now(),
		Status:    StatusInProgress,
	}
	t.History = append(t.History, t.CurrentOperation)
	return t.CurrentOperation
}

// Complete marks the current step as completed
func (t *DefaultTracker) Complete() {
	t.finish(StatusCompleted, nil)
}

// Error marks the current step as failed
func (t *DefaultTracker) Error(err error) {
	t.finish(StatusFailed, err)
}

func (t *DefaultTracker) finish(status string, err error) {
	if t.CurrentOperation == nil || t.CurrentOperation.Status != StatusInProgress {
		return
	}
	t.CurrentOperation.Status = status
	t.CurrentOperation.Err = err
	t.CurrentOperation.EndTime = time.Now()
}

// LogTracker reports steps to a zap logger at debug level
type LogTracker struct {
	DefaultTracker
	logger *zap.Logger
}

// NewLogTracker creates a tracker writing to logger
func NewLogTracker(logger *zap.Logger) *LogTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogTracker{logger: logger}
}

// Start begins tracking a new step
func (t *LogTracker) Start(step string) *Operation {
	op := t.DefaultTracker.Start(step)
	t.logger.Debug("step started", zap.String("step", step))
	return op
}

// Complete marks the current step as completed
func (t *LogTracker) Complete() {
	op := t.CurrentOperation
	if op == nil || op.Status != StatusInProgress {
		return
	}
	t.DefaultTracker.Complete()
	t.logger.Debug("step completed",
		zap.String("step", op.Name),
		zap.Duration("took", op.Duration()))
}

// Error marks the current step as failed
func (t *LogTracker) Error(err error) {
	op := t.CurrentOperation
	if op == nil || op.Status != StatusInProgress {
		return
	}
	t.DefaultTracker.Error(err)
	t.logger.Debug("step failed",
		zap.String("step", op.Name),
		zap.Duration("took", op.Duration()),
		zap.Error(err))
}
