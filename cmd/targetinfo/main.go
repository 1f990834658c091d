package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"targetinfo/internal/version"
)

// newRootCmd builds the command tree. Each call returns independent commands
// so flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "targetinfo",
		Short:        "Inspect the compiler target registry",
		Long:         `targetinfo builds the target registry the way the compiler driver does and reports what it contains`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyColorMode(cmd); err != nil {
				return err
			}
			if err := attachConfig(cmd); err != nil {
				return err
			}
			return setupTracing(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeTracing(cmd)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to targetinfo.toml (default: search upwards from the working directory)")
	root.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	root.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug); overrides [trace].level")
	root.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson)")
	root.PersistentFlags().Bool("timings", false, "show registration timings on stderr")

	root.AddCommand(newTargetsCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
