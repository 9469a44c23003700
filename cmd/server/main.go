package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"medicinna/internal/auth"
	authhandler "medicinna/internal/auth/handler"
	"medicinna/internal/detector"
	"medicinna/internal/jwttoken"
	"medicinna/internal/platform/config"
	"medicinna/internal/platform/httpserver"
	"medicinna/internal/platform/logger"
	platformmetrics "medicinna/internal/platform/metrics"
	"medicinna/internal/platform/postgres"
	platformredis "medicinna/internal/platform/redis"
	"medicinna/internal/registry"
	"medicinna/internal/reporting"
	reportinghandler "medicinna/internal/reporting/handler"
	"medicinna/internal/scanlog"
	httptransport "medicinna/internal/transport/http"
	"medicinna/internal/verification"
	verificationhandler "medicinna/internal/verification/handler"
	verificationmetrics "medicinna/internal/verification/metrics"
)

const tokenIssuer = "medicinna"

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var registryStore registry.Store = registry.NewPostgres(db)
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		registryStore = registry.NewCachedStore(registryStore, redisClient.Client, cfg.Redis.CacheTTL, log)
	}

	scanStore := scanlog.NewPostgres(db)

	var announcer verification.Announcer
	if cfg.KafkaBrokers != "" {
		publisher, err := scanlog.NewPublisher(strings.Split(cfg.KafkaBrokers, ","), log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		announcer = publisher
	}

	appMetrics := platformmetrics.New()
	tokens := jwttoken.NewService(cfg.JWTSigningKey, tokenIssuer)

	authService, err := auth.NewService(auth.NewPostgresUserStore(db), tokens, cfg.TokenTTL, cfg.LoginDomain, log, appMetrics)
	if err != nil {
		log.Error("auth service wiring failed", "error", err)
		os.Exit(1)
	}

	verifyService, err := verification.NewService(
		registryStore,
		scanStore,
		announcer,
		verification.DefaultRules(cfg.PurityThreshold),
		log,
		verificationmetrics.New(),
	)
	if err != nil {
		log.Error("verification service wiring failed", "error", err)
		os.Exit(1)
	}

	reportingService, err := reporting.NewService(scanStore)
	if err != nil {
		log.Error("reporting service wiring failed", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		TokenValidator: tokenValidator{tokens},
		Auth:           authhandler.New(authService, log),
		Reporting:      reportinghandler.New(reportingService, log),
		Detector:       detector.NewHandler(detector.NewClient(cfg.Detector), log),
		Verification:   verificationhandler.New(verifyService, log),
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting medicinna gateway", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
