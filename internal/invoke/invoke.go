// Package invoke runs one external command to completion, capturing its
// standard output. It is the only place the sweep tools touch os/exec.
package invoke

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/rescue-robots/rescuebench/internal/ctxlog"
)

// Options controls where a command's streams go and how long it may run.
type Options struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Dir     string
	Timeout time.Duration // 0 means no limit
}

// Result records one finished (or failed-to-start) invocation.
type Result struct {
	Argv     []string
	ExitCode int // -1 when the process never ran or died on a signal
	Duration time.Duration
	Err      error
}

// Failed reports whether the invocation ended in anything but a clean exit.
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Run executes argv[0] with the remaining arguments and waits for it to
// finish. Cancelling the context kills the process.
func Run(ctx context.Context, argv []string, opts Options) Result {
	logger := ctxlog.FromContext(ctx)
	res := Result{Argv: argv, ExitCode: -1}

	if len(argv) == 0 {
		res.Err = errors.New("invoke: empty command")
		return res
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Dir = opts.Dir

	logger.Debug("Invoking external command.", "argv", argv)
	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)

	if err == nil {
		res.ExitCode = 0
		return res
	}

	// A context deadline surfaces as a killed process; report the deadline
	// rather than the generic "signal: killed".
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.Err = ctxErr
		return res
	}

	// A plain non-zero exit is reported through ExitCode alone; Err is for
	// processes that never ran or were killed.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		res.ExitCode = exitErr.ExitCode()
		return res
	}
	res.Err = err
	return res
}
