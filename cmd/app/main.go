package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"warehouse/cmd"
	_ "warehouse/docs"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/logging"
	"warehouse/internal/pkg/metrics"
	"warehouse/internal/pkg/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.NewLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, configs, logger)
	stop()

	if err != nil {
		logger.Error("Service stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Service stopped")
	_ = logger.Sync()
}

func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	shutdownTracing, err := observability.SetupTracing(ctx, logging.ServiceName, configs.OtelExporterEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if shutdownErr := shutdownTracing(shutdownCtx); shutdownErr != nil {
			logger.Warn("Failed to flush traces", zap.Error(shutdownErr))
		}
	}()

	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if configs.SeedDemoData {
		if err = cmd.SeedDemoData(ctx, gormDB, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("Failed to close outbound connections", zap.Error(closeErr))
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}

	e := newWebServer(app)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server starting", zap.String("port", configs.HTTPPort))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		if startErr := jobManager.StartAll(); startErr != nil {
			return startErr
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		DBDriver:               os.Getenv("DB_DRIVER"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		AuditDir:               os.Getenv("AUDIT_DIR"),
		NotificationGateway:    os.Getenv("NOTIFICATION_GATEWAY"),
		EmailGatewayURL:        os.Getenv("EMAIL_GATEWAY_URL"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaNotificationTopic: os.Getenv("KAFKA_NOTIFICATION_TOPIC"),
		DefaultCustomerEmail:   os.Getenv("DEFAULT_CUSTOMER_EMAIL"),
		OtelExporterEndpoint:   os.Getenv("OTEL_EXPORTER_ENDPOINT"),
		PendingOrdersSchedule:  os.Getenv("PENDING_ORDERS_SCHEDULE"),
	}
	config.SeedDemoData, _ = strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))
	return config.WithDefaults()
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dialector := gorm_postgres.Open(configs.DSN())
	if configs.DBDriver == cmd.DriverPq {
		dialector = gorm_postgres.New(gorm_postgres.Config{
			DriverName: cmd.DriverPq,
			DSN:        configs.DSN(),
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Internal server error: " + err.Error(),
			})
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, app.CreateHTTPServer())
	return e
}
