package cmd

import (
	"proxyctl/ui"

	"github.com/spf13/cobra"
)

func newBypassCmd(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bypass",
		Short: "Manage the proxy bypass list",
		Long: `Manage the semicolon separated list of hosts that skip the proxy.

Entries are compared case-insensitively and ignoring surrounding whitespace.

Examples:
  proxyctl bypass show
  proxyctl bypass set "<local>;*.corp.example.com"
  proxyctl bypass add "10.*"
  proxyctl bypass remove "10.*"
  proxyctl bypass clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "List the bypass entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ui.NewPrinter(cmd.OutOrStdout())
				items, err := sess.configurator.ShowBypass()
				if err != nil {
					return report(p, err)
				}
				p.BypassItems(items)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <list>",
			Short: "Replace the whole bypass list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ui.NewPrinter(cmd.OutOrStdout())
				result, err := sess.configurator.SetBypass(args[0])
				if err != nil {
					return report(p, err)
				}
				p.BypassSet(result)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <item>",
			Short: "Append an entry unless it is already present",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ui.NewPrinter(cmd.OutOrStdout())
				result, err := sess.configurator.AddBypass(args[0])
				if err != nil {
					return report(p, err)
				}
				p.BypassAdded(result)
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove <item>",
			Aliases: []string{"delete"},
			Short:   "Remove every entry matching item",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ui.NewPrinter(cmd.OutOrStdout())
				result, err := sess.configurator.RemoveBypass(args[0])
				if err != nil {
					return report(p, err)
				}
				p.BypassRemoved(result)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete the bypass list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ui.NewPrinter(cmd.OutOrStdout())
				n, err := sess.configurator.ClearBypass()
				if err != nil {
					return report(p, err)
				}
				p.BypassCleared(n)
				return nil
			},
		},
	)
	return cmd
}
