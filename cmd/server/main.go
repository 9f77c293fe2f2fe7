package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/Saifeldin2401/prime-hotels-intranet-sub007/docs" // generated swagger docs
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/cache"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/config"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/excel"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/mail"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/scheduler"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/ws"
)

// @title Prime Hotels Knowledge Engine API
// @version 1.0
// @description Question bank, answer evaluation, quiz sessions and training analytics for the Prime Hotels staff intranet.
// @host localhost:8080
// @BasePath /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		slog.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		slog.Error("failed to ping MongoDB", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("failed to ping Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to Redis", "addr", cfg.RedisAddr)

	// WebSocket hub
	wsHub := ws.NewHub()

	// Repositories
	questionRepo := repository.NewQuestionRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	usageRepo := repository.NewUsageRepo(db)

	// Caches
	challengeCache := cache.NewChallengeCache(rdb)
	statsCache := cache.NewStatsCache(rdb)
	leaderboard := cache.NewLeaderboardCache(rdb)

	// Services
	mailer := mail.NewMailer(cfg.SMTP)
	authSvc := service.NewAuthService(cfg.JWTSecret)
	evaluator := service.NewEvaluatorService()
	questionSvc := service.NewQuestionService(questionRepo, statsCache, mailer)
	attemptSvc := service.NewAttemptService(attemptRepo, questionRepo, challengeCache, evaluator)
	sessionSvc := service.NewSessionService(sessionRepo, leaderboard)
	analyticsSvc := service.NewAnalyticsService(attemptRepo, questionRepo, statsCache, challengeCache, leaderboard)
	generationSvc := service.NewGenerationService(cfg.AI, questionSvc)
	usageSvc := service.NewUsageService(usageRepo, questionRepo)
	importer := excel.NewImporter(questionSvc)

	// Live feed events
	questionSvc.SetBroadcaster(wsHub)
	attemptSvc.SetBroadcaster(wsHub)
	sessionSvc.SetBroadcaster(wsHub)

	// Recurring jobs: challenge rotation, stats warmup
	sched := scheduler.New(analyticsSvc)
	sched.Start()

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		QuestionService:   questionSvc,
		AttemptService:    attemptSvc,
		SessionService:    sessionSvc,
		AnalyticsService:  analyticsSvc,
		GenerationService: generationSvc,
		UsageService:      usageSvc,
		Importer:          importer,
		WSHub:             wsHub,
		CORSOrigins:       cfg.CORSOrigins,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: rest.NewRouter(container),
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
