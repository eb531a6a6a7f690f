package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/aptoswatch/internal/blockingest"
	"github.com/gabapcia/aptoswatch/internal/chaintip"
	"github.com/gabapcia/aptoswatch/internal/checkpoint"
	"github.com/gabapcia/aptoswatch/internal/config"
	"github.com/gabapcia/aptoswatch/internal/handlers/cli"
	"github.com/gabapcia/aptoswatch/internal/healthmon"
	aptoschain "github.com/gabapcia/aptoswatch/internal/infra/blockchain/aptos"
	aptosindexer "github.com/gabapcia/aptoswatch/internal/infra/indexer/aptos"
	"github.com/gabapcia/aptoswatch/internal/infra/notify/telegram"
	"github.com/gabapcia/aptoswatch/internal/infra/storage/postgres"
	"github.com/gabapcia/aptoswatch/internal/infra/storage/redis"
	"github.com/gabapcia/aptoswatch/internal/pipeline"
	"github.com/gabapcia/aptoswatch/internal/pkg/logger"
	"github.com/gabapcia/aptoswatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/aptoswatch/internal/pkg/telemetry"
	"github.com/gabapcia/aptoswatch/internal/pkg/transport/graphql"
	httptransport "github.com/gabapcia/aptoswatch/internal/pkg/transport/http"
	"github.com/gabapcia/aptoswatch/internal/pkg/transport/rest"
	"github.com/gabapcia/aptoswatch/internal/report"
	"github.com/gabapcia/aptoswatch/internal/tokenprice"
	"github.com/gabapcia/aptoswatch/internal/walletalert"
	"github.com/gabapcia/aptoswatch/internal/walletindex"
	"github.com/gabapcia/aptoswatch/internal/walletregistry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "aptoswatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.OTelEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	bootRetry := retry.New(
		retry.WithAttempts(5),
		retry.WithDelay(time.Second),
		retry.WithMaxDelay(10*time.Second),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "retrying startup step", "attempt", attempt, "error", err)
		}),
	)

	db, err := postgres.New(ctx, cfg.DatabaseURL, postgres.DefaultPoolConfig(), bootRetry)
	if err != nil {
		return err
	}
	defer db.Close()

	var guard walletalert.DedupeGuard
	if cfg.RedisEnabled() {
		rc, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, bootRetry)
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()
		guard = redis.NewDedupeGuard(rc, cfg.DedupeTTL)
	} else {
		mg := walletalert.NewMemoryGuard(cfg.DedupeTTL)
		go mg.Start()
		defer mg.Stop()
		guard = mg
	}

	var (
		nodeHTTP     = httptransport.NewClient(httptransport.WithRetryLogging())
		indexerHTTP  = httptransport.NewClient(httptransport.WithTimeout(15*time.Second), httptransport.WithRetryLogging())
		telegramHTTP = httptransport.NewClient(httptransport.WithRetryPolicy(httptransport.NoRetryOnRateLimit))
	)

	var (
		primary  = aptoschain.NewClient(rest.NewClient(nodeHTTP.StandardClient(), cfg.RPCURL))
		backup   = aptoschain.NewClient(rest.NewClient(nodeHTTP.StandardClient(), cfg.BackupRPCURL))
		indexer  = aptosindexer.NewClient(graphql.NewClient(indexerHTTP.StandardClient(), cfg.GraphQLURL))
		notifier = telegram.NewClient(
			telegramHTTP.StandardClient(),
			cfg.TelegramBotToken,
			telegram.WithBaseURL(cfg.TelegramAPIURL),
			telegram.WithRateLimit(cfg.NotifyRatePerSecond),
		)
	)

	var (
		checkpoints   = db.Checkpoints()
		subscriptions = db.Subscriptions()

		reports = report.New(notifier, cfg.ReportChat)
		tracker = chaintip.New(backup, chaintip.WithInterval(cfg.TipPollInterval))
		wallets = walletindex.New(subscriptions, walletindex.WithInterval(cfg.WalletRefreshInterval))
		prices  = tokenprice.New(db.Tokens(), tokenprice.WithInterval(cfg.PriceRefreshInterval))
		alerts  = walletalert.New(
			notifier,
			subscriptions,
			walletalert.WithExplorerURL(cfg.ExplorerURL),
			walletalert.WithConcurrency(cfg.NotifyConcurrency),
			walletalert.WithDedupeGuard(guard),
		)
		compactor = checkpoint.NewCompactor(
			checkpoints,
			checkpoint.WithCompactionErrorHandler(reports.Report),
		)
		health = healthmon.New(
			checkpoints,
			primary,
			tracker,
			reports,
			healthmon.WithInterval(cfg.HealthCheckInterval),
			healthmon.WithStaleClaimAge(cfg.StaleClaimAge),
		)
	)

	workers, err := pipeline.BuildWorkers(blockingest.Dependencies{
		Checkpoints: checkpoints,
		Chain:       backup,
		Indexer:     indexer,
		Tip:         tracker,
		Wallets:     wallets,
		Prices:      prices,
		Alerter:     alerts,
		Reporter:    reports,
	}, checkpoints, cfg.Threads)
	if err != nil {
		return err
	}

	scanner := pipeline.New(pipeline.Components{
		Checkpoints: checkpoints,
		Primary:     primary,
		Retry:       bootRetry,
		Tracker:     tracker,
		Wallets:     wallets,
		Prices:      prices,
		Compactor:   compactor,
		Health:      health,
		Reports:     reports,
		Workers:     workers,
		Closers:     []pipeline.Closer{alerts},
	})

	return cli.Run(ctx, walletregistry.New(subscriptions), scanner, db)
}
