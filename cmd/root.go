package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"proxyctl/logger"
	"proxyctl/ui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const rootLongDesc = `Manage the current user's Windows proxy settings.

proxyctl reads and writes the ProxyEnable, ProxyServer and ProxyOverride
values under HKCU\Software\Microsoft\Windows\CurrentVersion\Internet Settings
and tells running applications to reload them. Run without arguments in a
terminal to open the interactive menu.

Examples:
  proxyctl check
  proxyctl set proxy.example.com:8080 "<local>;*.corp.example.com"
  proxyctl bypass add "*.internal"
  proxyctl bypass remove "*.internal"
  proxyctl disable`

type rootOptions struct {
	cfgFile  string
	store    string
	dbPath   string
	logPath  string
	logLevel string
}

// reportedError marks an error that was already printed for the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func newRootCmd(sess *session, in io.Reader) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "proxyctl",
		Short:         "Windows proxy configuration tool",
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSession(cmd) {
				return nil
			}
			return report(ui.NewPrinter(cmd.ErrOrStderr()), sess.open(opts))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				logger.Debug("Starting interactive menu")
				return ui.RunMenu(sess.configurator, in, cmd.OutOrStdout())
			}
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $CONFIG_DIR/proxyctl/proxyctl.yaml or ./proxyctl.yaml)")
	flags.StringVar(&opts.store, "store", "", "settings backend: registry or sqlite (overrides config/default)")
	flags.StringVar(&opts.dbPath, "dbpath", "", "path to SQLite database file (overrides config/default)")
	flags.StringVar(&opts.logPath, "log-path", "", "path for the log file (overrides config/default)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR (overrides config/default)")

	cmd.AddCommand(
		newCheckCmd(sess),
		newGetCmd(sess),
		newSetCmd(sess),
		newDisableCmd(sess),
		newBypassCmd(sess),
		newHistoryCmd(sess),
		newServeCmd(sess),
		newVersionCmd(),
	)
	return cmd
}

// skipsSession reports whether cmd runs without touching the settings store.
func skipsSession(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// Run executes proxyctl with args and returns the process exit code.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	sess := &session{}
	defer sess.close()

	root := newRootCmd(sess, in)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	if errors.As(err, &reported) {
		return 1
	}

	logger.Error("Command failed: %v", err)
	ui.NewPrinter(errOut).Error("Error: %v", err)
	target, _, findErr := root.Find(args)
	if findErr != nil || target == nil || strings.HasPrefix(err.Error(), "unknown command") {
		target = root
	}
	fmt.Fprintln(errOut)
	fmt.Fprint(errOut, target.UsageString())
	return 1
}

func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
