package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/International-Combat-Archery-Alliance/ticket-checkout/api"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/backend"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/checkout"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/dynamo"
	"github.com/International-Combat-Archery-Alliance/ticket-checkout/gateway"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := getSettingsFromEnv()
	logger := newLogger(settings.Env)

	if err := run(ctx, settings, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, settings Settings, logger *slog.Logger) error {
	shutdownTracing, err := setupTracing(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if settings.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.DynamoEndpoint)
		}
	})
	db := dynamo.NewDB(dynamoClient, settings.TableName)

	if settings.Env == api.LOCAL && settings.SeedEventID != "" {
		if err := seedLocalEvent(ctx, db, settings.SeedEventID, logger); err != nil {
			return err
		}
	}

	serviceKey, err := getServiceKey(ctx, awsCfg, settings)
	if err != nil {
		return err
	}

	notifier, err := createNotifier(awsCfg, logger, settings)
	if err != nil {
		return err
	}

	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	backends := backend.NewFactory(settings.BackendURL, httpClient, serviceKey)

	// Orchestrators outlive the request that started them, so they run
	// under the process context instead.
	registry := checkout.NewRegistry(ctx, db, logger)
	hub := gateway.NewHub()

	checkoutAPI := api.NewAPI(db, registry, hub, func(token string) api.SessionBackend {
		return backends.ForToken(token)
	}, notifier, settings.MerchantName, logger, settings.Env)

	h, err := checkoutAPI.Handler()
	if err != nil {
		return fmt.Errorf("error building handler: %w", err)
	}

	s := &http.Server{
		Handler:           otelhttp.NewHandler(h, "ticket-checkout"),
		Addr:              net.JoinHostPort(settings.Host, settings.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", s.Addr))
		serveErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Failed to shut down server cleanly", slog.String("error", err.Error()))
	}
	registry.Wait()

	return nil
}

func newLogger(env api.Environment) *slog.Logger {
	if env == api.PROD {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type Settings struct {
	Env  api.Environment
	Host string
	Port string

	TableName      string
	DynamoEndpoint string
	SeedEventID    string

	BackendURL      string
	ServiceKey      string
	ServiceKeyParam string
	MerchantName    string

	NotificationTopicARN string
	OTLPEndpoint         string
}

func getSettingsFromEnv() Settings {
	env := api.LOCAL
	if getEnvOrDefault("ENV", "LOCAL") == "PROD" {
		env = api.PROD
	}

	return Settings{
		Env:                  env,
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		Port:                 getEnvOrDefault("PORT", "8080"),
		TableName:            getEnvOrDefault("TABLE_NAME", "TicketCheckout"),
		DynamoEndpoint:       getEnvOrDefault("DYNAMO_ENDPOINT", ""),
		SeedEventID:          getEnvOrDefault("SEED_EVENT_ID", ""),
		BackendURL:           getEnvOrDefault("BACKEND_URL", "http://localhost:8000"),
		ServiceKey:           getEnvOrDefault("SERVICE_KEY", ""),
		ServiceKeyParam:      getEnvOrDefault("SERVICE_KEY_PARAM", "/ticket-checkout/service-key"),
		MerchantName:         getEnvOrDefault("MERCHANT_NAME", "ICAA"),
		NotificationTopicARN: getEnvOrDefault("SNS_TOPIC_ARN", ""),
		OTLPEndpoint:         getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
