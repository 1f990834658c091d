package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"targetinfo/internal/target/all"
	"targetinfo/internal/version"
)

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	Families  []string `json:"families"`
	GitCommit string   `json:"git_commit,omitempty"`
	BuildDate string   `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var (
		opts     versionOptions
		showFull bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build metadata and linked target families",
		Args:  cobra.NoArgs,
		RunE: closeOnError(func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			opts.showHash = opts.showHash || showFull
			opts.showDate = opts.showDate || showFull

			switch opts.format {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout(), opts)
				return nil
			case "json":
				return renderVersionJSON(cmd.OutOrStdout(), opts)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", opts.format)
			}
		}),
	}
	cmd.Flags().BoolVar(&opts.showHash, "hash", false, "include git commit hash")
	cmd.Flags().BoolVar(&opts.showDate, "date", false, "include build timestamp")
	cmd.Flags().BoolVar(&showFull, "full", false, "show every recorded bit of build metadata")
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderVersionPretty(out io.Writer, opts versionOptions) {
	fmt.Fprintf(out, "targetinfo %s\n", version.Colored())
	fmt.Fprintf(out, "families: %s\n", strings.Join(all.Families(), ", "))
	if opts.showHash {
		fmt.Fprintf(out, "commit:   %s\n", valueOrUnknown(version.GitCommit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:    %s\n", valueOrUnknown(version.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, opts versionOptions) error {
	payload := versionPayload{
		Tool:     "targetinfo",
		Version:  valueOrUnknown(strings.TrimSpace(version.Version)),
		Families: all.Families(),
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(strings.TrimSpace(version.GitCommit))
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(strings.TrimSpace(version.BuildDate))
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
