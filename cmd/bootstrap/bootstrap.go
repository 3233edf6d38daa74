package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"doctor-directory/config"
	deliveryHttp "doctor-directory/internal/delivery/http"
	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/infrastructure/metrics"
	"doctor-directory/internal/infrastructure/upstream"
	"doctor-directory/internal/repository"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config   *config.Config
	Store    *service.DoctorStore
	Registry *prometheus.Registry
	Server   *http.Server

	cancelLoad context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.Registry = registry

	// Initialize all layers
	server, store, err := initializeServer(cfg, registry)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.Store = store

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, registry *prometheus.Registry) (*http.Server, *service.DoctorStore, error) {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	directoryMetrics := metrics.NewDirectoryMetrics(registry)

	// Initialize upstream source
	httpClient := upstream.NewHTTPClient(cfg.Directory)
	sourceRepo := repository.NewDoctorSourceRepository(httpClient, cfg.Directory.SourceURL)

	// Initialize store
	store := service.NewDoctorStore(sourceRepo, log, directoryMetrics)

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, store, directoryMetrics, cfg.Directory.SuggestionLimit)

	// Initialize views
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	pageHandler := handler.NewPageHandler(directoryUsecase, customValidator, renderer, log)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log, directoryMetrics)
	corsMiddleware := middleware.NewCORSMiddleware("*")

	// Initialize router
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	router := deliveryHttp.NewRouter(doctorHandler, pageHandler, metricsHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, store, nil
}

// Run starts the directory ingestion and the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Ingest in the background; the page shows its loading state meanwhile
	loadCtx, cancel := context.WithCancel(context.Background())
	app.cancelLoad = cancel
	go func() {
		if err := app.Store.Load(loadCtx); err != nil {
			logrus.Errorf("Doctor directory unavailable: %v", err)
		}
	}()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close abandons an ingestion that is still in flight
func (app *App) Close() {
	if app.cancelLoad != nil {
		app.cancelLoad()
	}
}
