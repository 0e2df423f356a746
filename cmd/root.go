package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/cli/task"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/logging"
)

// session holds what the root command opened for its subcommands
type session struct {
	cli     *cli.CLI
	logFile io.Closer
}

func (s *session) close() {
	if s.cli != nil {
		if err := s.cli.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// newRootCmd builds the tasktrack command tree around s
func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasktrack",
		Short: "TaskTrack - a personal task tracker",
		Long: `TaskTrack keeps a list of tasks with due dates, priorities and tags
in a local SQLite file or a PostgreSQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/tasktrack/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database DSN, overriding the config file")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// open loads config, starts logging and connects to the store
func (s *session) open(cmd *cobra.Command) error {
	formatter := cli.FormatterFromFlags(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return formatter.Fail("CONFIG_ERROR", err, "Run 'tasktrack config path' to find the config file")
	}

	logFile, err := logging.Init(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return formatter.Fail("LOGGING_ERROR", err, "")
	}
	s.logFile = logFile

	// The config subcommands never touch the store
	if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	}

	c, err := cli.NewCLI(cmd.Context(), cfg)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err, "Check database.driver and database.dsn in your config file")
	}
	s.cli = c

	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	return cfg, nil
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context, args []string) int {
	s := &session{}
	defer s.close()

	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	if !cli.IsReported(err) {
		// Flag and argument errors from cobra itself
		rootCmd.PrintErrln("Error:", err)
		rootCmd.PrintErrln("Run 'tasktrack --help' for usage.")
		return cli.ExitUsage
	}
	return cli.ExitCode(err)
}
