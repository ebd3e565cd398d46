package executor

import (
	"context"
	"sync"

	"github.com/rescue-robots/rescuebench/internal/ctxlog"
)

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, readyChan <-chan *Task, cancel context.CancelFunc, wg *sync.WaitGroup, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for t := range readyChan {
		workerLogger := logger.With("workerID", workerID, "taskID", t.ID)

		if ctx.Err() != nil {
			t.err = ctx.Err()
			t.SetState(Skipped)
			workerLogger.Debug("Task skipped, run already cancelled.")
			wg.Done()
			continue
		}

		workerLogger.Debug("Worker picked up task.")
		t.SetState(Running)

		if err := t.Fn(ctx); err != nil {
			workerLogger.Error("Task failed.", "error", err)
			t.err = err
			t.SetState(Failed)
			if e.failFast {
				cancel()
			}
			wg.Done()
			continue
		}

		workerLogger.Debug("Task succeeded.")
		t.SetState(Done)
		wg.Done()
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
