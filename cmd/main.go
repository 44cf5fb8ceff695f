package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-trial-participants/docs"
	"github.com/sbilibin2017/gw-trial-participants/internal/config"
	"github.com/sbilibin2017/gw-trial-participants/internal/handlers"
	"github.com/sbilibin2017/gw-trial-participants/internal/jwt"
	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/middlewares"
	"github.com/sbilibin2017/gw-trial-participants/internal/migrations"
	"github.com/sbilibin2017/gw-trial-participants/internal/repositories"
	"github.com/sbilibin2017/gw-trial-participants/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-trial-participants API
// @version 1.0.0
// @description Authenticated REST service for users and clinical-trial participants
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It applies migrations, sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Log.Info("Database migrations applied")

	kafkaWriter := newKafkaWriter(cfg)
	if kafkaWriter != nil {
		defer kafkaWriter.Close()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(db, cfg, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter returns nil when no brokers are configured.
func newKafkaWriter(cfg *config.Config) services.KafkaWriter {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Log.Info("KAFKA_BROKERS not set, participant events disabled")
		return nil
	}
	logger.Log.Infow("Kafka writer initialized", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaParticipantTopic)
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaParticipantTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(db *sqlx.DB, cfg *config.Config, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.TokenTTL()),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	participantReadRepo := repositories.NewParticipantReadRepository(db, middlewares.GetTxFromContext)
	participantWriteRepo := repositories.NewParticipantWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	participantService := services.NewParticipantService(participantReadRepo, participantWriteRepo, kafkaWriter)

	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/health", handlers.NewHealthHandler())

		// Public routes
		r.With(txMiddleware).Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Route("/participants", func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/", handlers.NewListParticipantsHandler(participantService))
			r.With(txMiddleware).Post("/", handlers.NewCreateParticipantHandler(participantService))
			r.Get("/metrics/summary", handlers.NewParticipantMetricsHandler(participantService))
			r.Get("/{id}", handlers.NewGetParticipantHandler(participantService))
			r.With(txMiddleware).Put("/{id}", handlers.NewUpdateParticipantHandler(participantService))
			r.With(txMiddleware).Delete("/{id}", handlers.NewDeleteParticipantHandler(participantService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
