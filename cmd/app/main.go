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

	"makon/config"
	"makon/internal/application/usecase"
	"makon/internal/domain"
	"makon/internal/infrastructure/ai"
	"makon/internal/infrastructure/cache"
	"makon/internal/infrastructure/repository"
	"makon/internal/infrastructure/security"
	"makon/internal/middleware"
	handlers "makon/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.UserStreak{},
		&domain.UserProgress{},
		&domain.GamificationProfile{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.CommunityPost{},
		&domain.PostLike{},
		&domain.AffiliateLink{},
		&domain.AffiliateClick{},
		&domain.WalletTransaction{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Репозитории и кеши
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	gamificationRepo := repository.NewGamificationRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	affiliateRepo := repository.NewAffiliateRepository(db)

	tokenCache := cache.NewTokenCache(rdb)
	leaderboardCache := cache.NewLeaderboardCache(rdb)
	rateLimiter := middleware.NewRateLimiter(rdb)

	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	mentor := ai.NewMentorClient(cfg.GroqAPIKey, cfg.GroqModel)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager)
	progressUseCase := usecase.NewProgressUseCase(progressRepo, streakRepo, gamificationRepo, leaderboardCache)
	shopUseCase := usecase.NewShopUseCase(walletRepo)
	communityUseCase := usecase.NewCommunityUseCase(communityRepo)
	affiliateUseCase := usecase.NewAffiliateUseCase(affiliateRepo)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(leaderboardCache, gamificationRepo)

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:        handlers.NewAuthHandler(authUseCase),
		Progress:    handlers.NewProgressHandler(progressUseCase),
		Shop:        handlers.NewShopHandler(shopUseCase),
		Wallet:      handlers.NewWalletHandler(shopUseCase),
		Course:      handlers.NewCourseHandler(courseRepo),
		Community:   handlers.NewCommunityHandler(communityUseCase),
		Affiliate:   handlers.NewAffiliateHandler(affiliateUseCase, cfg.FrontendURL),
		Chat:        handlers.NewChatHandler(mentor),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardUseCase),
		Validator:   authUseCase,
		Limiter:     rateLimiter,
		FrontendURL: cfg.FrontendURL,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	log.Printf("MAKON API is running on port %s...", cfg.HTTPPort)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
