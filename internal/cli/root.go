package cli

import (
	"nexhr-leave/internal/usecase/balance"
	"nexhr-leave/internal/usecase/directory"
	"nexhr-leave/internal/usecase/importer"
	"nexhr-leave/internal/usecase/ledger"

	"github.com/spf13/cobra"
)

// App holds the usecases the admin commands drive.
type App struct {
	Migrate   func() error
	Importer  *importer.Usecase
	Ledger    *ledger.Usecase
	Balances  *balance.Resolver
	Directory *directory.Usecase
}

// NewRootCmd creates the top-level "leavectl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "leavectl",
		Short:         "Admin tooling for the leave ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(app),
		newImportCmd(app),
		newPendingCmd(app),
		newBalancesCmd(app),
		newEmployeesCmd(app),
		newAddEmployeeCmd(app),
		newLinkUserCmd(app),
	)
	return root
}
