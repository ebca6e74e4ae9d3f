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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-video-rooms/internal/facades"
	"github.com/sbilibin2017/gw-video-rooms/internal/handlers"
	"github.com/sbilibin2017/gw-video-rooms/internal/jwt"
	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/middlewares"
	"github.com/sbilibin2017/gw-video-rooms/internal/repositories"
	"github.com/sbilibin2017/gw-video-rooms/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-video-rooms/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-video-rooms API
// @version 1.0.0
// @description Backend for a video calling application: accounts, rooms, membership and media-session credentials
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		rateLimitMax, rateLimitWindowSecond,
		kafkaBrokers, kafkaTopic,
		livekitURL, livekitAPIKey, livekitAPISecret,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		rateLimitMax, rateLimitWindowSecond,
		kafkaBrokers, kafkaTopic,
		livekitURL, livekitAPIKey, livekitAPISecret,
		jwtSecret, jwtExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, LiveKit, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	rateLimitMax, rateLimitWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	livekitURL, livekitAPIKey, livekitAPISecret string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if rateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX_REQUESTS", "30")); err != nil {
		return
	}
	if rateLimitWindowSecond, err = strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "room-events")

	// LiveKit config
	livekitURL = getEnv("LIVEKIT_URL", "ws://localhost:7880")
	livekitAPIKey = getEnv("LIVEKIT_API_KEY", "devkey")
	livekitAPISecret = getEnv("LIVEKIT_API_SECRET", "secret")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, LiveKit client, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	rateLimitMax, rateLimitWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	livekitURL, livekitAPIKey, livekitAPISecret string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}
	if err := repositories.EnsureSchema(ctx, db); err != nil {
		log.Fatal("schema migration failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for the room event audit stream. Optional: services
	// tolerate a nil writer and skip publishing.
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Kafka event publishing enabled, topic %s", kafkaTopic)
	} else {
		log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// LiveKit facade
	livekitFacade := facades.NewLiveKitFacade(livekitURL, livekitAPIKey, livekitAPISecret)

	// Session token service
	sessionJWT := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	roomReadRepo := repositories.NewRoomReadRepository(db, middlewares.GetTxFromContext)
	roomWriteRepo := repositories.NewRoomWriteRepository(db, middlewares.GetTxFromContext)
	membershipReadRepo := repositories.NewMembershipReadRepository(db, middlewares.GetTxFromContext)
	membershipWriteRepo := repositories.NewMembershipWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, sessionJWT)
	roomService := services.NewRoomService(roomReadRepo, roomWriteRepo, membershipReadRepo, membershipWriteRepo, livekitFacade, kafkaWriter)
	membershipService := services.NewMembershipService(userReadRepo, roomReadRepo, membershipReadRepo, membershipWriteRepo, livekitFacade, kafkaWriter)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	createRoomHandler := handlers.NewCreateRoomHandler(roomService)
	listRoomsHandler := handlers.NewListRoomsHandler(roomService)
	getRoomHandler := handlers.NewGetRoomHandler(roomService)
	deleteRoomHandler := handlers.NewDeleteRoomHandler(roomService)
	joinRoomHandler := handlers.NewJoinRoomHandler(membershipService)
	leaveRoomHandler := handlers.NewLeaveRoomHandler(membershipService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Get("/health", healthHandler)
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rdb, rateLimitMax, time.Duration(rateLimitWindowSecond)*time.Second))
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
	})

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(sessionJWT, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/auth/me", meHandler)
		r.Get("/rooms", listRoomsHandler)
		r.Get("/rooms/{roomID}", getRoomHandler)
	})

	// Protected mutating routes run in a request transaction
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/rooms", createRoomHandler)
		r.Delete("/rooms/{roomID}", deleteRoomHandler)
		r.Post("/rooms/{roomID}/join", joinRoomHandler)
		r.Post("/rooms/{roomID}/leave", leaveRoomHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
