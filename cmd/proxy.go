package cmd

import (
	"proxyctl/core"
	"proxyctl/ui"

	"github.com/spf13/cobra"
)

func newCheckCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Aliases: []string{"status"},
		Short:   "Show whether the proxy is enabled and what it points at",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.NewPrinter(cmd.OutOrStdout())
			state, err := sess.configurator.CheckStatus()
			if err != nil {
				return report(p, err)
			}
			p.Status(state)
			return nil
		},
	}
}

func newGetCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Print the stored proxy settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.NewPrinter(cmd.OutOrStdout())
			state, err := sess.configurator.GetSettings()
			if err != nil {
				return report(p, err)
			}
			p.Settings(state)
			return nil
		},
	}
}

func newSetCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "set <server> [bypass]",
		Short: "Enable the proxy with a server and bypass list",
		Long: `Store the proxy server and bypass list and enable the proxy.

The bypass list is semicolon separated. When omitted it defaults to ` + core.DefaultBypass + `.

Examples:
  proxyctl set proxy.example.com:8080
  proxyctl set 10.0.0.1:3128 "<local>;*.corp.example.com"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.NewPrinter(cmd.OutOrStdout())
			bypass := ""
			if len(args) == 2 {
				bypass = args[1]
			}
			result, err := sess.configurator.SetProxy(args[0], bypass)
			if err != nil {
				return report(p, err)
			}
			p.ProxySet(result)
			return nil
		},
	}
}

func newDisableCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:     "disable",
		Aliases: []string{"off"},
		Short:   "Disable the proxy, keeping the stored server and bypass list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.NewPrinter(cmd.OutOrStdout())
			result, err := sess.configurator.DisableProxy()
			if err != nil {
				return report(p, err)
			}
			p.ProxyDisabled(result)
			return nil
		},
	}
}
