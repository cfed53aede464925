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

	"apna/config"
	"apna/cron"
	"apna/database/kv"
	marketplaceRepo "apna/database/repository/marketplace"
	"apna/handlers"
	"apna/metrics"
	"apna/middleware"
	"apna/routes"
	"apna/services/geo"
	"apna/services/marketplace"
	"apna/services/notification"
	"apna/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	metrics.Register()

	bgCtx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	// Client-side state (favorites, theme, last location).
	store, closeKV := kv.Open(cfg, logger)
	defer func() {
		if err := closeKV(); err != nil {
			logger.Warn("main: failed to close kv store", zap.Error(err))
		}
	}()

	repo := marketplaceRepo.NewSeededStore(marketplaceRepo.Options{Latency: cfg.StoreLatency()})

	var (
		notifier notification.Notifier = notification.LogNotifier{Logger: logger}
		queue    *asynq.Client
		worker   *asynq.Server
	)
	if cfg.RemindersEnabled {
		queue = asynq.NewClient(cron.RedisOpt(cfg))
		notifier = notification.NewQueueNotifier(queue, cfg.ReminderLead(), logger)
		worker = cron.InitReminderWorker(bgCtx, cfg, logger)
	}

	startHealthMonitor(bgCtx, cfg, logger)

	// services.
	marketplaceService := marketplace.NewDefaultMarketplaceService(repo, store, notifier, logger)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceService, store)
	handlerBundle := handlers.NewHandlerBundle(marketplaceHandler)

	locator := geo.NewIPLocator(cfg.GeoLookupURL, cfg.GeoLookupTimeout(), logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, middleware.GeolocationMiddleware(locator, cfg.GeoLookupTimeout()))

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	cancelBackground()
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		if err := queue.Close(); err != nil {
			logger.Warn("main: failed to close reminder queue client", zap.Error(err))
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// startHealthMonitor pings the Redis databases this process depends on.
func startHealthMonitor(ctx context.Context, cfg config.Config, logger *zap.Logger) {
	clients := map[string]*redis.Client{}
	if strings.EqualFold(cfg.KVBackend, "redis") {
		if client, err := utils.NewRedisClient(cfg, cfg.RedisKVDB); err == nil {
			clients["kv"] = client
		} else {
			logger.Warn("main: kv redis unreachable for health checks", zap.Error(err))
		}
	}
	if cfg.RemindersEnabled {
		if client, err := utils.NewRedisClient(cfg, cfg.RedisQueueDB); err == nil {
			clients["queue"] = client
		} else {
			logger.Warn("main: queue redis unreachable for health checks", zap.Error(err))
		}
	}
	if len(clients) == 0 {
		return
	}
	utils.StartHealthMonitor(ctx, clients, 60*time.Second)
	go func() {
		<-ctx.Done()
		for _, c := range clients {
			_ = c.Close()
		}
	}()
}
