package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"nexhr-leave/internal/adapter/snapshot"

	"github.com/spf13/cobra"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a browser local-storage export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			snap, err := snapshot.Decode(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "would import %d leaves, %d employees, %d users, settings=%t\n",
					len(snap.Leaves), len(snap.Employees), len(snap.Users), snap.Settings != nil)
			} else {
				rep, err := app.Importer.Import(cmd.Context(), snap)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "imported %d leaves, %d employees, %d users, settings=%t\n",
					rep.Leaves, rep.Employees, rep.Users, rep.Settings)
			}
			for _, s := range snap.Skipped {
				fmt.Fprintln(out, "skipped:", s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Decode and report without writing")
	return cmd
}

func newPendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List requests awaiting a decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Ledger.ListPending(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTART\tEND\tDAYS")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", r.ID, r.Name, r.Type, r.Start, r.End, r.Days)
			}
			return w.Flush()
		},
	}
}

func newBalancesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balances <employee-id>",
		Short: "Show an employee's leave balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			empID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			view, err := app.Balances.ForEmployee(cmd.Context(), &empID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tENTITLEMENT\tTAKEN\tREMAINING")
			for _, b := range view.Balances {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", b.Type, b.Entitlement, b.Taken, b.Remaining)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if len(view.Approximated) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "approximate day counts for requests %v\n", view.Approximated)
			}
			return nil
		},
	}
}
