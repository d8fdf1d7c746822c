package main

import (
	"bufio"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/baseline"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/config"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/geoedge"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/policy"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/publisher"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/scheduler"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/service"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dryRun := flag.Bool("dry-run", false, "report required corrections without calling the API")
	days := flag.Int("days", 0, "lookback window for active account projects (overrides config)")
	allProjects := flag.Bool("all-projects", false, "check all projects for active accounts, not just recent ones")
	allRemote := flag.Bool("all-remote", false, "build the candidate set from the remote project listing")
	accountsFile := flag.String("accounts-file", "", "file with account ids to check, one per line")
	watch := flag.Bool("watch", false, "keep running on the configured interval instead of one-shot")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	logger = setupLogger(cfg.LogLevel)

	var accountIDs []string
	if *accountsFile != "" {
		accountIDs, err = loadAccounts(*accountsFile)
		if err != nil {
			logger.Error("failed to load accounts file", "path", *accountsFile, "error", err)
			os.Exit(2)
		}
		logger.Info("using account list override", "accounts", len(accountIDs))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(2)
	}
	defer db.Close()

	statusStore := postgres.NewAccountStatusStore(db)
	projectStore := postgres.NewProjectStore(db)

	client := geoedge.New(geoedge.Config{
		BaseURL:        cfg.API.BaseURL,
		APIKey:         cfg.API.APIKey,
		PageSize:       cfg.API.PageSize,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	var reporter service.Reporter
	if cfg.RabbitMQ.URL != "" {
		rmq, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(2)
		}
		defer rmq.Close()
		reporter = rmq
	}

	lookback := cfg.Reconcile.LookbackDays
	if *days > 0 {
		lookback = *days
	}

	reconciler := service.NewReconciler(
		statusStore,
		projectStore,
		client,
		baseline.NewFileStore(cfg.Reconcile.BaselinePath, logger),
		reporter,
		policy.New(cfg.Reconcile.StandardScansPerDay, cfg.Reconcile.AddonScansPerDay),
		logger,
		service.Options{
			LookbackDays: lookback,
			Workers:      cfg.Reconcile.Workers,
			DryRun:       *dryRun,
			AllProjects:  *allProjects,
			AllRemote:    *allRemote,
			AccountIDs:   accountIDs,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *watch {
		interval := cfg.Reconcile.Interval
		if interval == 0 {
			interval = 24 * time.Hour
		}
		sched := scheduler.NewScheduler(reconciler, interval, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	rep, err := reconciler.Run(ctx)
	if err != nil {
		logger.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}

	if rep.Failed() && !rep.DryRun {
		os.Exit(1)
	}
}

func loadAccounts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var accounts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token != "" {
			accounts = append(accounts, token)
		}
	}
	return accounts, scanner.Err()
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
