package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nexhr-leave/internal/adapter/repository/mysql"
	"nexhr-leave/internal/testutil/testdb"
	"nexhr-leave/internal/usecase/balance"
	"nexhr-leave/internal/usecase/directory"
	"nexhr-leave/internal/usecase/importer"
	"nexhr-leave/internal/usecase/ledger"
	"nexhr-leave/pkg/id"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `{
  "nexhr_leaves": "[{\"id\":1709280000000,\"employeeId\":1,\"name\":\"Ram Sharma\",\"type\":\"Annual\",\"start\":\"2024-03-01\",\"end\":\"2024-03-05\",\"status\":\"Approved\"},{\"id\":1709280000001,\"employeeId\":1,\"name\":\"Ram Sharma\",\"type\":\"Sick\",\"start\":\"2024-03-10\",\"end\":\"2024-03-11\",\"status\":\"Pending\"},{\"id\":1709280000002,\"type\":\"Bogus\"}]",
  "nexhr_settings": "{\"leavePolicy\":\"Annual Leave: 18\\nSick Leave: 12\\nCasual Leave: 6\"}"
}`

func newApp(t *testing.T) *App {
	t.Helper()
	gdb := testdb.Open(t)
	repos := mysql.Repos(gdb)
	return &App{
		Migrate:   func() error { return mysql.Migrate(gdb) },
		Importer:  importer.NewUsecase(mysql.NewGormUoW(gdb), nil),
		Ledger:    ledger.NewUsecase(repos, id.NewSequence(), nil),
		Balances:  balance.NewResolver(repos, nil),
		Directory: directory.NewUsecase(mysql.NewGormUoW(gdb), repos, nil),
	}
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(app)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(export), 0o600))
	return path
}

func TestMigrate(t *testing.T) {
	out, err := run(t, newApp(t), "migrate")
	require.NoError(t, err)
	assert.Equal(t, "schema up to date\n", out)

	_, err = run(t, &App{Migrate: func() error { return errors.New("locked") }}, "migrate")
	assert.EqualError(t, err, "migrate: locked")
}

func TestImport_DryRunWritesNothing(t *testing.T) {
	app := newApp(t)
	out, err := run(t, app, "import", "--dry-run", writeExport(t))
	require.NoError(t, err)
	assert.Contains(t, out, "would import 2 leaves, 0 employees, 0 users, settings=true")
	assert.Contains(t, out, `skipped: leaves[2]: unknown type "Bogus"`)

	rows, err := app.Ledger.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestImportThenReport(t *testing.T) {
	app := newApp(t)

	out, err := run(t, app, "import", writeExport(t))
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 leaves, 0 employees, 0 users, settings=true")

	out, err = run(t, app, "pending")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "1709280000001")
	assert.Contains(t, lines[1], "Sick")

	out, err = run(t, app, "balances", "1")
	require.NoError(t, err)
	assert.Regexp(t, `Annual\s+18\s+5\s+13`, out)
	assert.Regexp(t, `Sick\s+12\s+0\s+12`, out)
	assert.NotContains(t, out, "approximate")
}

func TestArgumentErrors(t *testing.T) {
	app := newApp(t)

	_, err := run(t, app, "balances", "abc")
	assert.EqualError(t, err, `invalid employee id "abc"`)

	_, err = run(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, app, "import")
	assert.Error(t, err)
}

func TestDirectoryCommands(t *testing.T) {
	app := newApp(t)

	out, err := run(t, app, "add-employee", "Sita Rai", "--dept", "Finance")
	require.NoError(t, err)
	assert.Equal(t, "added employee 1 (Sita Rai)\n", out)

	out, err = run(t, app, "add-employee", "Ram Sharma", "--id", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "added employee 10")

	out, err = run(t, app, "employees")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Finance")
	assert.Contains(t, lines[2], "Active")

	out, err = run(t, app, "link-user", "sita", "--employee", "1")
	require.NoError(t, err)
	assert.Equal(t, "user sita (employee) linked to employee 1\n", out)

	_, err = run(t, app, "link-user", "ghost", "--employee", "99")
	assert.ErrorContains(t, err, "unknown employee")

	_, err = run(t, app, "link-user", "ghost", "--employee", "x")
	assert.EqualError(t, err, `invalid employee id "x"`)
}
