package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ritmolab/ritmo-engine/internal/adapters/cache"
	adapterHTTP "github.com/ritmolab/ritmo-engine/internal/adapters/handler/http"
	"github.com/ritmolab/ritmo-engine/internal/adapters/repository"
	"github.com/ritmolab/ritmo-engine/internal/config"
	"github.com/ritmolab/ritmo-engine/internal/core/services"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: Failed to load configuration: %v", err)
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	// Redis is optional: without it dashboards are recomputed on every
	// request and the rate limiter is disabled.
	redisClient, err := cache.NewRedisClient(cache.ClientOptions{
		Host:         cfg.RedisHost,
		Port:         cfg.RedisPort,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err != nil {
		log.Printf("Redis unavailable, running without snapshot cache: %v", err)
		redisClient = nil
	}

	habitRepo := repository.NewPostgresHabitRepository(db)
	progressRepo := repository.NewPostgresProgressRepository(db)
	todoRepo := repository.NewPostgresTodoRepository(db)
	xpRepo := repository.NewPostgresXPRepository(db)

	engineCfg := cfg.EngineConfig()

	var snapshots services.SnapshotCache
	if redisClient != nil {
		snapshots = cache.NewSnapshotCache(redisClient, cfg.SnapshotTTL)
	}

	dashboardService := services.NewDashboardService(habitRepo, progressRepo, todoRepo, xpRepo, snapshots, engineCfg)
	xpService := services.NewXPService(xpRepo, engineCfg)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dashboardHandler := adapterHTTP.NewDashboardHandler(dashboardService, xpService)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DashboardHandler: dashboardHandler,
		TokenService:     tokenService,
		DB:               db,
		Redis:            redisClient,
		RateLimit:        cfg.RateLimitPerMinute,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Ritmo Engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
