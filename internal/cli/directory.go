package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/usecase/directory"

	"github.com/spf13/cobra"
)

// operator acts for whoever runs leavectl against the database.
var operator = identity.Identity{Username: "leavectl", Role: "admin"}

func newEmployeesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the employee directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Directory.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDEPT\tSTATUS")
			for _, e := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Dept, e.Status)
			}
			return w.Flush()
		},
	}
}

func newAddEmployeeCmd(app *App) *cobra.Command {
	var in directory.EmployeeInput

	cmd := &cobra.Command{
		Use:   "add-employee <name>",
		Short: "Add an employee to the directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			e, err := app.Directory.AddEmployee(cmd.Context(), operator, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added employee %d (%s)\n", e.ID, e.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&in.ID, "id", 0, "Explicit employee id (default: next free)")
	cmd.Flags().StringVar(&in.Dept, "dept", "", "Department")
	cmd.Flags().StringVar(&in.Status, "status", "", "Employment status (default Active)")
	return cmd
}

func newLinkUserCmd(app *App) *cobra.Command {
	var (
		role     string
		employee string
	)

	cmd := &cobra.Command{
		Use:   "link-user <username>",
		Short: "Create or update a user and its employee link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := directory.LinkInput{Username: args[0], Role: role}
			if employee != "" {
				id, err := strconv.ParseInt(employee, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid employee id %q", employee)
				}
				in.EmployeeID = &id
			}
			who, err := app.Directory.LinkUser(cmd.Context(), operator, in)
			if err != nil {
				return err
			}
			if who.EmployeeID != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "user %s (%s) linked to employee %d\n", who.Username, who.Role, *who.EmployeeID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "user %s (%s) has no employee link\n", who.Username, who.Role)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role (default employee)")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee id to link")
	return cmd
}
