package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"targetinfo/internal/observ"
	"targetinfo/internal/target"
	"targetinfo/internal/target/all"
	"targetinfo/internal/trace"
)

// buildRegistry runs the registration table for the families enabled in the
// manifest, inside a driver-level span named after the command. With
// --timings the per-family durations go to stderr.
func buildRegistry(cmd *cobra.Command) (*target.Registry, error) {
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	ctx := cmd.Context()
	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
		ctx = observ.WithTimer(ctx, timer)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "targetinfo."+cmd.Name(), 0)
	r, err := all.Build(ctx, configFrom(cmd).Targets.Enabled)
	if err != nil {
		span.End("failed")
		return nil, err
	}
	span.End("")

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return r, nil
}
