package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ramp-gateway/config"
	httpHandler "ramp-gateway/internal/adapter/http/handler"
	"ramp-gateway/internal/adapter/ledger"
	"ramp-gateway/internal/adapter/notify"
	"ramp-gateway/internal/adapter/payment"
	"ramp-gateway/internal/adapter/rates"
	pgStorage "ramp-gateway/internal/adapter/storage/postgres"
	redisStorage "ramp-gateway/internal/adapter/storage/redis"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/internal/service"
	"ramp-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("RGW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Ramp Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Core services
	encSvc, err := service.NewXChaChaEncryptionService(cfg.Crypto.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()

	var tokenSvc ports.TokenService
	if cfg.Auth.JWTSecret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	} else {
		log.Warn().Msg("auth.jwt_secret is empty, order routes accept unauthenticated callers")
	}

	// Repositories
	txRepo := pgStorage.NewTransactionRepo(pool, encSvc)
	userRepo := pgStorage.NewUserRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Ledger
	authority, err := domain.ParseLedgerAuthority(cfg.Ledger.AuthorityKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load ledger authority")
	}
	rpcClient := ledger.NewClient(cfg.Ledger.RPCURL)
	ledgerGw, err := ledger.NewGateway(rpcClient, cfg.Ledger, logger.Component(log, "ledger"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger gateway")
	}
	log.Info().
		Str("rpc", cfg.Ledger.RPCURL).
		Str("authority", authority.PublicKey().String()).
		Msg("Ledger gateway ready")

	// Payment providers
	httpClient := payment.NewHTTPClient(cfg.Payment.Timeout)
	payments := payment.NewGateway(
		payment.NewFincra(cfg.Payment.Fincra, httpClient),
		payment.NewPaybox(cfg.Payment.Paybox, httpClient),
	)

	// Status notifications
	hub := notify.NewHub(logger.Component(log, "notify"))
	var notifier ports.Notifier = hub
	var kafkaPub *notify.KafkaPublisher
	if cfg.Notify.Kafka.Enabled {
		kafkaPub = notify.NewKafkaPublisher(cfg.Notify.Kafka)
		notifier = notify.NewFanout(logger.Component(log, "notify"), hub, kafkaPub)
		log.Info().
			Strs("brokers", cfg.Notify.Kafka.Brokers).
			Str("topic", cfg.Notify.Kafka.Topic).
			Msg("Kafka status publisher enabled")
	}

	// Business services
	orderSvc := service.NewOrderService(
		txRepo,
		userRepo,
		ledgerGw,
		payments,
		notifier,
		transactor,
		authority,
		cfg.Payment.ClientURL,
		logger.Component(log, "order"),
	)
	reconciler := service.NewWebhookReconciler(
		txRepo,
		sigSvc,
		redisStorage.NewWebhookStore(rdb),
		notifier,
		service.WebhookSecrets{
			Fincra: cfg.Payment.Fincra.WebhookSecret,
			Paybox: cfg.Payment.Paybox.WebhookSecret,
		},
		logger.Component(log, "webhook"),
	)
	if cfg.Payment.Fincra.WebhookSecret == "" || cfg.Payment.Paybox.WebhookSecret == "" {
		log.Warn().Msg("a provider webhook secret is empty, its callbacks will be rejected")
	}
	userSvc := service.NewUserService(userRepo, logger.Component(log, "users"))
	marketSvc := service.NewMarketService(
		rates.NewForex(cfg.Rates, httpClient),
		redisStorage.NewRateCache(rdb),
		payments,
		cfg.Rates.CacheTTL,
		logger.Component(log, "market"),
	)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	ledgerHealth := ledger.NewHealthCheck(rpcClient, cfg.Ledger.RPCTimeout)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetAPISpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /docs")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		Reconciler:     reconciler,
		UserSvc:        userSvc,
		MarketSvc:      marketSvc,
		TokenSvc:       tokenSvc,
		Hub:            hub,
		RateLimitStore: rateLimitStore,
		AuditSvc:       auditSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, ledgerHealth},
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			log.Error().Err(err).Msg("Kafka publisher close failed")
		}
	}

	log.Info().Msg("Server exited")
}
