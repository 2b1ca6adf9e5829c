package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"itinerary-relay/internal/common/config"
	"itinerary-relay/internal/common/logger"
	"itinerary-relay/internal/common/observability"
	"itinerary-relay/internal/itinerary/invoker"
	"itinerary-relay/internal/itinerary/normalize"
	"itinerary-relay/internal/itinerary/planner"
	"itinerary-relay/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	appLogger := logger.NewZapAdapter(zapLogger)

	obs := observability.New("itinerary-relay")
	defer obs.Shutdown()

	normalizer, err := normalize.NewNormalizer()
	if err != nil {
		zapLogger.Fatal("Failed to compile itinerary schema", zap.Error(err))
	}

	strategy := cfg.ResolveStrategy()
	inv, err := buildInvoker(strategy, cfg)
	if err != nil {
		zapLogger.Fatal("Failed to build model invoker", zap.Error(err))
	}

	pl := planner.New(inv, normalizer, appLogger)
	handler := server.NewHandler(pl, cfg.App.Version, cfg.Server.MaxBodyBytes, appLogger, obs)

	mux := http.NewServeMux()
	server.SetupRoutes(mux, handler)
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           corsHandler.Handler(mux),
		ReadHeaderTimeout: config.GetDuration(cfg.Server.ReadHeaderTimeout),
	}

	go func() {
		appLogger.Info("server running", map[string]interface{}{
			"port":                cfg.Server.Port,
			"strategy":            strategy,
			"allowedOrigins":      cfg.Server.AllowedOrigins,
			"anthropicKeyPresent": cfg.Anthropic.Configured(),
			"healthEndpoint":      fmt.Sprintf("http://localhost:%s/api/health", cfg.Server.Port),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("server exited", nil)
}

// buildInvoker picks the invocation strategy resolved from configuration.
// The mock strategy also covers the missing-credential case, matching what
// ResolveStrategy returns.
func buildInvoker(strategy string, cfg *config.Config) (invoker.Invoker, error) {
	switch strategy {
	case config.StrategyAnthropic:
		return invoker.NewAnthropic(cfg.Anthropic)
	case config.StrategyUpstream:
		return invoker.NewUpstream(cfg.Upstream)
	default:
		return invoker.NewMock(), nil
	}
}
