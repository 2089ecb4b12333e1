package main

import (
	"context"
	"fmt"
	"os"

	"nexhr-leave/internal/adapter/repository/mysql"
	"nexhr-leave/internal/cli"
	"nexhr-leave/internal/config"
	"nexhr-leave/internal/infrastructure/db"
	"nexhr-leave/internal/infrastructure/logging"
	"nexhr-leave/internal/usecase/balance"
	"nexhr-leave/internal/usecase/directory"
	"nexhr-leave/internal/usecase/importer"
	"nexhr-leave/internal/usecase/ledger"
	"nexhr-leave/pkg/id"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.Open(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	repos := mysql.Repos(gdb)

	app := &cli.App{
		Migrate:   func() error { return mysql.Migrate(gdb) },
		Importer:  importer.NewUsecase(mysql.NewGormUoW(gdb), log.Named("import")),
		Ledger:    ledger.NewUsecase(repos, id.NewSequence(), log.Named("ledger")),
		Balances:  balance.NewResolver(repos, log.Named("balance")),
		Directory: directory.NewUsecase(mysql.NewGormUoW(gdb), repos, log.Named("directory")),
	}
	log.Debug("leavectl ready", zap.String("driver", cfg.DBDriver))
	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
