package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "nexhr-leave/internal/adapter/http"
	"nexhr-leave/internal/adapter/middleware"
	"nexhr-leave/internal/adapter/repository/mysql"
	"nexhr-leave/internal/config"
	"nexhr-leave/internal/infrastructure/cache"
	"nexhr-leave/internal/infrastructure/db"
	"nexhr-leave/internal/infrastructure/logging"
	ucApproval "nexhr-leave/internal/usecase/approval"
	"nexhr-leave/internal/usecase/balance"
	ucDirectory "nexhr-leave/internal/usecase/directory"
	"nexhr-leave/internal/usecase/ledger"
	ucSettings "nexhr-leave/internal/usecase/settings"
	"nexhr-leave/pkg/id"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	gdb, err := db.Open(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	if err := mysql.Migrate(gdb); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("sql db", zap.Error(err))
	}
	checks := map[string]httpadp.Pinger{"db": sqlDB.PingContext}

	var idem echo.MiddlewareFunc
	if cfg.IdempEnabled {
		rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err != nil {
			log.Fatal("open redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer rdb.Close()
		idem = middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log.Named("idempotency"))
		checks["redis"] = cache.Ping(rdb)
	}

	repos := mysql.Repos(gdb)
	resolver := balance.NewResolver(repos, log.Named("balance"))
	handlers := httpadp.Handlers{
		Health:    httpadp.NewHandler(checks),
		Leaves:    httpadp.NewLeaveHandler(ledger.NewUsecase(repos, id.NewSequence(), log.Named("ledger")), log),
		Approvals: httpadp.NewApprovalHandler(ucApproval.NewGate(mysql.NewGormUoW(gdb), resolver, log.Named("approval")), log),
		Balances:  httpadp.NewBalanceHandler(resolver, log),
		Settings:  httpadp.NewSettingsHandler(ucSettings.NewUsecase(repos.Settings, log.Named("settings")), log),
		Directory: httpadp.NewDirectoryHandler(ucDirectory.NewUsecase(mysql.NewGormUoW(gdb), repos, log.Named("directory")), log),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger(log.Named("http")))
	httpadp.Register(e, handlers, middleware.Session(repos.Users, log.Named("session")), idem)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("HTTP server running", zap.String("addr", addr), zap.String("driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return
	}
	log.Info("server exited gracefully")
}
