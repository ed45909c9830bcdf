package cmd

import (
	"io"
	"os"
	"time"

	"nathanbeddoewebdev/njalla/cmd/commands/audit"
	"nathanbeddoewebdev/njalla/cmd/commands/auth"
	"nathanbeddoewebdev/njalla/cmd/commands/cmdutil"
	cfgcmd "nathanbeddoewebdev/njalla/cmd/commands/config"
	domaincmd "nathanbeddoewebdev/njalla/cmd/commands/domain"
	"nathanbeddoewebdev/njalla/cmd/commands/record"
	"nathanbeddoewebdev/njalla/cmd/commands/server"
	"nathanbeddoewebdev/njalla/cmd/commands/sshkey"
	"nathanbeddoewebdev/njalla/internal/config"
	"nathanbeddoewebdev/njalla/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session holds per-invocation state set up by the root pre-run hook.
type session struct {
	stderr    io.Writer
	closeLogs func()
}

func (s *session) close() {
	if s.closeLogs != nil {
		s.closeLogs()
		s.closeLogs = nil
	}
}

// rootCmd represents the base command when called without any subcommands.
func rootCmd(s *session) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "njalla",
		Short: "A CLI for the Njalla domain, DNS and VPS API",
		Long: `njalla manages the domains, DNS records and virtual servers on a Njalla
account through its JSON-RPC API. Every command prints JSON on stdout;
failures print a JSON error on stderr and exit non-zero.

Quick start:
  export NJALLA_API_TOKEN=...            # or: njalla auth login
  njalla domain list
  njalla record list example.com
  njalla record add example.com -t A -n www -c 1.2.3.4
  njalla server list`,
		Version:           cmdutil.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log requests and responses to stderr")
	cmd.SetFlagErrorFunc(cmdutil.FlagError)

	cmd.AddCommand(domaincmd.NewCommand())
	cmd.AddCommand(record.NewCommand())
	cmd.AddCommand(server.NewCommand())
	cmd.AddCommand(sshkey.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// setup builds the invocation's logger and attaches it to the context.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := logging.Options{Verbose: verbose, Stderr: s.stderr}
	// A broken config file is reported by the commands that need it.
	if cfg, err := config.Load(); err == nil {
		opts.File = cfg.LogFile
	}

	logger, closeLogs := logging.New(opts)
	s.closeLogs = closeLogs
	cmd.SetContext(cmdutil.WithLogger(cmd.Context(), logger))

	logger.Debug("running command", zap.String("command", cmd.CommandPath()))
	return nil
}

// run executes args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	s := &session{stderr: stderr}
	root := rootCmd(s)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	start := time.Now()
	executed, err := root.ExecuteC()

	if executed != nil {
		logger := cmdutil.Logger(executed.Context())
		logger.Debug("command finished",
			zap.String("command", executed.CommandPath()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		if shouldAudit(executed) {
			recordAudit(executed, err, start)
		}
	}
	s.close()

	if err != nil {
		cmdutil.WriteError(stderr, err)
		return 1
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
