package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"targetinfo/internal/target"
)

func newTargetsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List registered targets",
		Args:  cobra.NoArgs,
		RunE: closeOnError(func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case "pretty", "json", "msgpack":
			default:
				return fmt.Errorf("unsupported format %q (must be pretty, json or msgpack)", format)
			}

			r, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r.Snapshot())
			case "msgpack":
				return target.EncodeSnapshot(out, r.Snapshot())
			default:
				renderTargetsPretty(out, r.Targets())
				return nil
			}
		}),
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

var targetsHeaderStyle = lipgloss.NewStyle().Bold(true).MarginLeft(2)

// renderTargetsPretty prints the "Registered Targets" banner of a compiler
// driver, one aligned row per target.
func renderTargetsPretty(out io.Writer, targets []*target.Target) {
	header := "Registered Targets:"
	if !color.NoColor {
		header = targetsHeaderStyle.Render(header)
	} else {
		header = "  " + header
	}
	fmt.Fprintln(out, header)

	if len(targets) == 0 {
		fmt.Fprintln(out, "    (none)")
		return
	}

	nameWidth, descWidth := 0, 0
	for _, t := range targets {
		nameWidth = max(nameWidth, runewidth.StringWidth(t.Name()))
		descWidth = max(descWidth, runewidth.StringWidth(t.ShortDesc()))
	}

	jit := color.New(color.FgGreen)
	for _, t := range targets {
		line := "    " + runewidth.FillRight(t.Name(), nameWidth) + " - " + t.ShortDesc()
		if t.HasJIT() {
			line = runewidth.FillRight(line, 4+nameWidth+3+descWidth) + " " + jit.Sprint("[jit]")
		}
		fmt.Fprintln(out, line)
	}
}
