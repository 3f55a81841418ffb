package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	v1alpha1 "github.com/questforge/adventure-api/internal/handlers/api/v1alpha1"
	"github.com/questforge/adventure-api/internal/gamestate"
	adventureorch "github.com/questforge/adventure-api/internal/orchestrators/adventure"
	"github.com/questforge/adventure-api/internal/party"
	"github.com/questforge/adventure-api/internal/pkg/clock"
	"github.com/questforge/adventure-api/internal/redis"
	gamestaterepo "github.com/questforge/adventure-api/internal/repositories/gamestate"
)

// serverConfig is populated from the environment
type serverConfig struct {
	Port          int           `env:"PORT" envDefault:"8080"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	AllowOrigins  []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	Timeout       time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Debug         bool          `env:"DEBUG" envDefault:"false"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the adventure API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := serverConfig{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Error("failed to close redis client", "error", closeErr)
		}
	}()

	stateStore, err := gamestate.New(&gamestate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create state store: %w", err)
	}

	partyManager, err := party.New(&party.Config{})
	if err != nil {
		return fmt.Errorf("failed to create party manager: %w", err)
	}

	repo, err := gamestaterepo.NewRedis(&gamestaterepo.RedisConfig{
		Client: redisClient,
		Codec:  stateStore,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game state repository: %w", err)
	}

	orch, err := adventureorch.New(&adventureorch.Config{
		GameStateRepo: repo,
		StateStore:    stateStore,
		PartyManager:  partyManager,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AdventureService: orch,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router.Group("/api/v1alpha1"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", serveErr)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer shutdownCancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Error("graceful shutdown failed", "error", shutdownErr)
			return shutdownErr
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
