package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"targetinfo/internal/trace"
)

// setupTracing reads the trace flags, falling back to [trace].level from the
// manifest, and attaches the tracer to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Flags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	if !flags.Changed("trace-level") {
		levelStr = configFrom(cmd).Trace.Level
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace without a level means "show phases".
	if level == trace.LevelOff && traceOutput != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

func closeTracing(cmd *cobra.Command) error {
	return trace.FromContext(cmd.Context()).Close()
}

// closeOnError closes the tracer when run fails, since cobra skips
// PersistentPostRunE after a RunE error.
func closeOnError(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			tracer := trace.FromContext(cmd.Context())
			_ = tracer.Flush()
			_ = tracer.Close()
		}
		return err
	}
}
