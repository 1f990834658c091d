package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"targetinfo/internal/config"
)

type configKey struct{}

// attachConfig loads --config, or the nearest targetinfo.toml, into the
// command context. A missing manifest is not an error.
func attachConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, _, err = config.LoadFrom(".")
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
	return nil
}

func configFrom(cmd *cobra.Command) config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
			return cfg
		}
	}
	return config.Config{}
}
