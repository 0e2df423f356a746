package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"gopkg.in/yaml.v3"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return nil, errors.New("configuration not loaded")
}

// configPath honors the --config flag before the default lookup
func configPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	return config.Path()
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return (&cli.OutputFormatter{}).Fail("CONFIG_PATH_ERROR", err, "")
			}
			fmt.Println(path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return (&cli.OutputFormatter{}).Fail("CONFIG_ERROR", err, "")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return (&cli.OutputFormatter{}).Fail("CONFIG_ERROR", err, "")
			}
			fmt.Print(string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &cli.OutputFormatter{}
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail("CONFIG_ERROR", err, "")
			}
			path, err := configPath(cmd)
			if err != nil {
				return formatter.Fail("CONFIG_PATH_ERROR", err, "")
			}
			if err := cfg.SaveTo(path); err != nil {
				return formatter.Fail("CONFIG_SAVE_ERROR", err, "")
			}
			fmt.Println("✓ Wrote", path)
			return nil
		},
	})

	return cmd
}
