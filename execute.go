package syspower

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/syspower/internal/command"
	"github.com/oshokin/syspower/internal/logger"
)

// execute walks the plan strictly in order, one command at a time, stopping
// at the first success. Two power-control commands must never run
// concurrently, and there is no timeout: a hung tool blocks the call, since
// no uniform timeout semantic exists across the tools we drive.
//
// Per-invocation failures are swallowed and recorded; only the aggregate
// terminal failure is visible to the caller. Nothing is retried, because a
// tool that just failed will fail again when retried immediately.
//
// Context cancellation stops pending attempts only. An attempt already
// handed to the runner runs to completion regardless.
func execute(ctx context.Context, runner command.Runner, op Operation, plan []invocation) error {
	attempts := make([]Outcome, 0, len(plan))

	for _, inv := range plan {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s interrupted after %d attempt(s): %w", op, len(attempts), err)
		}

		desc := inv.description()
		logger.DebugKV(ctx, "Attempting method", "command", desc)

		output, err := runner.Run(ctx, inv.path, inv.args, inv.input)
		if err == nil {
			// Most successful attempts never reach this line: the OS tears
			// the process down first, which is success too.
			logger.InfoKV(ctx, "Method succeeded", "command", desc)
			return nil
		}

		logger.DebugKV(ctx, "Method failed", "command", desc, "error", err)

		attempts = append(attempts, Outcome{
			Command: desc,
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		})
	}

	return &NoWorkingMethodError{Op: op, Attempts: attempts}
}
