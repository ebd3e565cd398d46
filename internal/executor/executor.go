// Package executor runs a flat list of independent tasks through a bounded
// worker pool. A sweep has no inter-task dependencies, so every task is ready
// from the start; the pool only bounds how many run at once.
package executor

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rescue-robots/rescuebench/internal/ctxlog"
)

// State is a task's execution state.
type State int32

const (
	// Pending means the task has not been picked up by a worker yet.
	Pending State = iota
	// Running means a worker is executing the task.
	Running
	// Done means the task completed successfully.
	Done
	// Failed means the task ran and returned an error.
	Failed
	// Skipped means the task was never run because the run was cancelled.
	Skipped
)

// String returns the lowercase state name used in logs and summaries.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Task is one unit of work.
type Task struct {
	// ID is a human-readable identifier for logging.
	ID string
	// Fn does the work. A non-nil error marks the task Failed.
	Fn func(ctx context.Context) error

	state atomic.Int32
	err   error
}

// SetState atomically sets the task's execution state.
func (t *Task) SetState(s State) {
	t.state.Store(int32(s))
}

// GetState atomically retrieves the task's execution state.
func (t *Task) GetState() State {
	return State(t.state.Load())
}

// Err returns the error recorded for a Failed or Skipped task. It is only
// safe to call after Run has returned.
func (t *Task) Err() error {
	return t.err
}

// Executor dispatches tasks to a fixed number of workers.
type Executor struct {
	numWorkers int
	failFast   bool
}

// New creates an executor. An invalid worker count falls back to 1, which
// gives strictly sequential execution in task order.
func New(numWorkers int, failFast bool) *Executor {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Executor{numWorkers: numWorkers, failFast: failFast}
}

// Run executes all tasks and blocks until every one is Done, Failed, or
// Skipped. In fail-fast mode the first failure cancels the run context so
// in-flight tasks can abort and queued tasks are skipped; the first failure
// is returned. Otherwise Run always returns nil and callers inspect task
// states.
func (e *Executor) Run(ctx context.Context, tasks []*Task) error {
	logger := ctxlog.FromContext(ctx)

	readyChan := make(chan *Task, len(tasks))
	for _, t := range tasks {
		readyChan <- t
	}
	close(readyChan)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	logger.Debug("Starting worker pool.", "workers", e.numWorkers, "tasks", len(tasks))
	for i := 0; i < e.numWorkers; i++ {
		go e.worker(runCtx, readyChan, cancel, &wg, i)
	}

	wg.Wait()
	logger.Debug("All tasks completed.")

	if !e.failFast {
		return nil
	}
	for _, t := range tasks {
		if t.GetState() == Failed {
			return t.err
		}
	}
	return nil
}

// CountFailed counts tasks in the Failed state. Only meaningful after Run.
func CountFailed(tasks []*Task) int {
	n := 0
	for _, t := range tasks {
		if t.GetState() == Failed {
			n++
		}
	}
	return n
}
