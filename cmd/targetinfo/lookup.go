package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"targetinfo/internal/target"
	"targetinfo/internal/triple"
)

var errNoTriple = errors.New("no triple given and [targets].default is not set")

func newLookupCmd() *cobra.Command {
	var requireJIT bool
	cmd := &cobra.Command{
		Use:   "lookup [triple]",
		Short: "Resolve a target triple to a registered target",
		Args:  cobra.MaximumNArgs(1),
		RunE: closeOnError(func(cmd *cobra.Command, args []string) error {
			name := configFrom(cmd).Targets.Default
			if len(args) == 1 {
				name = args[0]
			}
			name = strings.TrimSpace(name)
			if name == "" {
				return errNoTriple
			}

			r, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			t, err := r.LookupTriple(name)
			if err != nil {
				return err
			}
			if requireJIT && !t.HasJIT() {
				return fmt.Errorf("target %q does not support JIT", t.Name())
			}
			renderLookup(cmd.OutOrStdout(), name, t)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&requireJIT, "require-jit", false, "fail unless the target supports JIT")
	return cmd
}

func renderLookup(out io.Writer, query string, t *target.Target) {
	nameColor := color.New(color.FgGreen, color.Bold)
	caps := []string{fmt.Sprintf("%d-bit", t.Arch().PointerBits())}
	if t.HasJIT() {
		caps = append(caps, "jit")
	}
	tr := triple.Parse(query)
	fmt.Fprintf(out, "%s -> %s (%s), %s\n", tr, nameColor.Sprint(t.Name()), t.ShortDesc(), strings.Join(caps, ", "))
}
