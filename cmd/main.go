package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avelora/gw-agent-economy/internal/conversion"
	"github.com/avelora/gw-agent-economy/internal/facades"
	"github.com/avelora/gw-agent-economy/internal/handlers"
	"github.com/avelora/gw-agent-economy/internal/jwt"
	"github.com/avelora/gw-agent-economy/internal/logger"
	"github.com/avelora/gw-agent-economy/internal/middlewares"
	"github.com/avelora/gw-agent-economy/internal/repositories"
	"github.com/avelora/gw-agent-economy/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all runtime configuration loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	cacheExpSecond    int

	mongoURI           string
	mongoDB            string
	mongoTimeoutSecond int

	kafkaBroker     string
	kafkaAuditTopic string

	jwtSecretKey string
	jwtExpSecond int

	coinsPerUnit    int64
	diamondsPerUnit int64
	costRateMinor   int64
	payoutRateMinor int64
	toleranceMinor  int64

	withdrawMinDiamonds   int64
	withdrawCadenceHours  int
	sweepIntervalSecond   int
	sweepStuckAfterSecond int
	sweepBatchSize        int
}

// @title gw-agent-economy API
// @version 1.0.0
// @description Service for agent-mediated game economy operations: coin recharges and diamond withdrawals
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, cache, broker, JWT and policy configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue))); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
		}
		return v
	}
	getEnvInt64 := func(key string, defaultValue int64) int64 {
		if err != nil {
			return 0
		}
		var v int64
		if v, err = strconv.ParseInt(getEnv(key, strconv.FormatInt(defaultValue, 10)), 10, 64); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
		}
		return v
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgPort = getEnvInt("POSTGRES_PORT", 5432)
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	cfg.pgMaxOpenConns = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16)
	cfg.pgMaxIdleConns = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8)

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPort = getEnvInt("REDIS_PORT", 6379)
	cfg.redisDB = getEnvInt("REDIS_DB", 0)
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.redisPoolSize = getEnvInt("REDIS_POOL_SIZE", 10)
	cfg.redisMinIdleConns = getEnvInt("REDIS_MIN_IDLE_CONNS", 2)
	cfg.cacheExpSecond = getEnvInt("CACHE_EXP_SECOND", 86400)

	// MongoDB config (game economy store)
	cfg.mongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.mongoDB = getEnv("MONGO_DB", "game_economy")
	cfg.mongoTimeoutSecond = getEnvInt("MONGO_TIMEOUT_SECOND", 5)

	// Kafka config; empty broker disables audit publishing
	cfg.kafkaBroker = getEnv("KAFKA_BROKER", "")
	cfg.kafkaAuditTopic = getEnv("KAFKA_AUDIT_TOPIC", "economy-audit")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.jwtExpSecond = getEnvInt("JWT_EXP_SECOND", 3600)

	// Conversion policy
	cfg.coinsPerUnit = getEnvInt64("COINS_PER_UNIT", 14000)
	cfg.diamondsPerUnit = getEnvInt64("DIAMONDS_PER_UNIT", 11200)
	cfg.costRateMinor = getEnvInt64("COST_RATE_MINOR", 5600)
	cfg.payoutRateMinor = getEnvInt64("PAYOUT_RATE_MINOR", 5600)
	cfg.toleranceMinor = getEnvInt64("TOLERANCE_MINOR", 1)

	// Withdrawal policy and reconciliation sweep
	cfg.withdrawMinDiamonds = getEnvInt64("WITHDRAW_MIN_DIAMONDS", 112000)
	cfg.withdrawCadenceHours = getEnvInt("WITHDRAW_CADENCE_HOURS", 168)
	cfg.sweepIntervalSecond = getEnvInt("SWEEP_INTERVAL_SECOND", 60)
	cfg.sweepStuckAfterSecond = getEnvInt("SWEEP_STUCK_AFTER_SECOND", 300)
	cfg.sweepBatchSize = getEnvInt("SWEEP_BATCH_SIZE", 100)

	return cfg, err
}

// run initializes the logger, stores, broker and HTTP server. It sets up
// routes, applies middleware, starts the reconciliation sweep and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to MongoDB (game economy store)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.mongoURI))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer mongoClient.Disconnect(ctx)
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	// Audit publishing; disabled when no broker is configured
	var audit services.AuditRecorder = services.NopAuditRecorder{}
	if cfg.kafkaBroker != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaAuditTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		audit = services.NewKafkaAuditRecorder(kafkaWriter)
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Conversion and withdrawal policies
	policy := conversion.Policy{
		CoinsPerUnit:    cfg.coinsPerUnit,
		DiamondsPerUnit: cfg.diamondsPerUnit,
		CostRateMinor:   cfg.costRateMinor,
		PayoutRateMinor: cfg.payoutRateMinor,
		ToleranceMinor:  cfg.toleranceMinor,
	}
	withdrawalPolicy := services.WithdrawalPolicy{
		MinDiamonds:   cfg.withdrawMinDiamonds,
		CadenceWindow: time.Duration(cfg.withdrawCadenceHours) * time.Hour,
	}

	// Initialize repositories
	walletWriteRepo := repositories.NewWalletWriterRepository(db)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	ledgerWriteRepo := repositories.NewLedgerWriterRepository(db)
	ledgerReadRepo := repositories.NewLedgerReaderRepository(db)
	rechargeWriteRepo := repositories.NewRechargeIntentWriteRepository(db)
	rechargeReadRepo := repositories.NewRechargeIntentReadRepository(db)
	withdrawalWriteRepo := repositories.NewWithdrawalIntentWriteRepository(db)
	withdrawalReadRepo := repositories.NewWithdrawalIntentReadRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	intentCache := repositories.NewIntentCacheRepository(rdb, time.Duration(cfg.cacheExpSecond)*time.Second)

	// Game economy bridge
	bridge := facades.NewMongoEconomyFacade(
		mongoClient.Database(cfg.mongoDB),
		time.Duration(cfg.mongoTimeoutSecond)*time.Second,
	)
	if err := bridge.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure economy indexes: %w", err)
	}

	// Initialize services
	inTx := services.NewTxRunner(db)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	walletService := services.NewWalletService(inTx, walletWriteRepo, walletReadRepo, ledgerWriteRepo, ledgerReadRepo, audit)
	rechargeService := services.NewRechargeService(inTx, policy, walletWriteRepo, ledgerWriteRepo,
		rechargeWriteRepo, rechargeReadRepo, intentCache, bridge, audit)
	withdrawalService := services.NewWithdrawalService(inTx, policy, withdrawalPolicy, walletWriteRepo, ledgerWriteRepo,
		withdrawalWriteRepo, withdrawalReadRepo, intentCache, bridge, audit)
	reconcileService := services.NewReconcileService(inTx, walletWriteRepo, ledgerWriteRepo,
		rechargeWriteRepo, rechargeReadRepo, withdrawalWriteRepo, withdrawalReadRepo, bridge, audit,
		time.Duration(cfg.sweepStuckAfterSecond)*time.Second, cfg.sweepBatchSize)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createRechargeHandler := handlers.NewCreateRechargeHandler(rechargeService, tokener)
	listRechargesHandler := handlers.NewListRechargesHandler(rechargeService, tokener)
	createWithdrawalHandler := handlers.NewCreateWithdrawalHandler(withdrawalService, tokener)
	cancelWithdrawalHandler := handlers.NewCancelWithdrawalHandler(withdrawalService, tokener)
	listWithdrawalsHandler := handlers.NewListWithdrawalsHandler(withdrawalService, tokener)
	ensureWalletHandler := handlers.NewEnsureWalletHandler(walletService, tokener)
	walletSummaryHandler := handlers.NewWalletSummaryHandler(walletService, tokener)
	walletLedgerHandler := handlers.NewWalletLedgerHandler(walletService, tokener)
	topupHandler := handlers.NewTopupHandler(walletService, tokener)
	playerLookupHandler := handlers.NewPlayerLookupHandler(bridge, tokener)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Post("/recharges", createRechargeHandler)
			r.Get("/recharges", listRechargesHandler)
			r.Post("/withdrawals", createWithdrawalHandler)
			r.Get("/withdrawals", listWithdrawalsHandler)
			r.Delete("/withdrawals/{id}", cancelWithdrawalHandler)
			r.Get("/wallet", walletSummaryHandler)
			r.Post("/wallet/ensure", ensureWalletHandler)
			r.Post("/wallet/topup", topupHandler)
			r.Get("/wallet/{id}/ledger", walletLedgerHandler)
			r.Get("/players/{remoteUserId}", playerLookupHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Background reconciliation of intents stuck in processing
	go reconcileService.Start(ctxShutdown, time.Duration(cfg.sweepIntervalSecond)*time.Second)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
