package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/syspower"
	"github.com/oshokin/syspower/internal/config"
	"github.com/oshokin/syspower/internal/logger"
)

// operationSpec binds one CLI subcommand to an engine operation.
type operationSpec struct {
	op    syspower.Operation
	short string
}

// operationCommands lists the six operation subcommands.
var operationCommands = []operationSpec{
	{op: syspower.OpShutdown, short: "Power the machine off."},
	{op: syspower.OpReboot, short: "Restart the machine."},
	{op: syspower.OpSuspend, short: "Suspend the machine to RAM."},
	{op: syspower.OpHibernate, short: "Suspend the machine to disk."},
	{op: syspower.OpHybridSleep, short: "Hibernate to disk, then suspend to RAM."},
	{op: syspower.OpLogout, short: "Log out of the current desktop session."},
}

// newOperationCommand builds the cobra command for one operation.
func newOperationCommand(spec operationSpec) *cobra.Command {
	return &cobra.Command{
		Use:   spec.op.String(),
		Short: spec.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Interrupts stop pending attempts from starting; a method
			// already running always finishes, since killing a power tool
			// midway is worse than either of its outcomes.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return runOperation(ctx, cmd, spec.op)
		},
	}
}

// runOperation loads settings, configures logging, and either prints the
// resolved plan or executes the operation.
func runOperation(ctx context.Context, cmd *cobra.Command, op syspower.Operation) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// The flag wins over the settings file.
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	parsed, ok := logger.ParseLogLevel(level)
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	logger.SetLevel(parsed)

	var opts []syspower.Option
	if noSession || cfg.NoSession {
		opts = append(opts, syspower.WithoutSession())
	}

	if dryRun {
		lines, err := syspower.Plan(ctx, op, opts...)
		if err != nil {
			return err
		}

		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}

		return nil
	}

	return syspower.Do(ctx, op, opts...)
}
