package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"proxyctl/ui"

	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("history is disabled or the database is unavailable")

func newHistoryCmd(sess *session) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent changes to the proxy settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ui.NewPrinter(cmd.OutOrStdout())
			if sess.db == nil {
				return report(p, errHistoryDisabled)
			}
			changes, err := sess.db.ListChanges(limit)
			if err != nil {
				return report(p, err)
			}
			if len(changes) == 0 {
				p.Info("No changes recorded yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tFIELD\tACTION\tOLD\tNEW\tBACKEND")
			for _, c := range changes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ChangedAt.Local().Format("2006-01-02 15:04:05"),
					c.Field, c.Action,
					historyValue(c.OldValue.String, c.OldValue.Valid),
					historyValue(c.NewValue.String, c.NewValue.Valid),
					c.Backend)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	return cmd
}

func historyValue(s string, ok bool) string {
	if !ok {
		return "-"
	}
	if s == "" {
		return `""`
	}
	return s
}

