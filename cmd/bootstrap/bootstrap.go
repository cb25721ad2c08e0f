package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-appointment-api/config"
	deliveryHttp "medical-appointment-api/internal/delivery/http"
	"medical-appointment-api/internal/delivery/http/handler"
	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/internal/infrastructure/database"
	"medical-appointment-api/internal/repository"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
	"medical-appointment-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

const (
	connectTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     database.Connection
	Server *http.Server
	log    *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.Log)
	app := &App{Config: cfg, log: log}
	log.Info("Configuration loaded successfully")

	customValidator := validator.NewValidator()
	if err := customValidator.Check(&cfg.DB); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	if err := customValidator.Check(&cfg.Audit); err != nil {
		return nil, fmt.Errorf("invalid audit config: %w", err)
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// No route depends on the datastore, so an unreachable server is not fatal
	if err := db.Ping(ctx); err != nil {
		log.Warnf("Database %s is not reachable: %v", db.Driver(), err)
	} else {
		log.Infof("Database %s connected successfully", db.Driver())
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return logrus.StandardLogger()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger) *http.Server {
	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository(repository.SeedDoctors())
	patientRepo := repository.NewPatientRepository(repository.SeedPatients())
	appointmentRepo := repository.NewAppointmentRepository(repository.SeedAppointments())
	auditLogRepo := repository.NewAuditLogRepository(cfg.Audit.Capacity)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, auditService)
	statsUsecase := usecase.NewStatsUsecase(log, doctorRepo, patientRepo, appointmentRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	notFound := response.NewNotFoundPolicy(cfg.App.StrictNotFound)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, notFound)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, notFound)
	statsHandler := handler.NewStatsHandler(statsUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, notFound)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	log.Infof("CORS allowed origins: %s", corsMiddleware.AllowedOrigins())

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		patientHandler,
		appointmentHandler,
		statsHandler,
		auditLogHandler,
		corsMiddleware,
		loggingMiddleware,
	)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.log.Infof("Server starting on port %s", app.Config.App.Port)
		app.log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close(ctx)

	app.log.Info("Server shutdown complete")
}

// Close releases the datastore connection
func (app *App) Close(ctx context.Context) {
	if app.DB == nil {
		return
	}
	if err := app.DB.Close(ctx); err != nil {
		app.log.Errorf("Failed to close database: %v", err)
	}
}
