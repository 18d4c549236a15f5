package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalboard/internal/cache"
	"github.com/templui/goalboard/internal/config"
	"github.com/templui/goalboard/internal/db"
	"github.com/templui/goalboard/internal/handler"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/storage"
)

type App struct {
	Cfg   *config.Config
	DB    *sqlx.DB
	Cache cache.Cache
	Clock service.Clock

	AuthService        *service.AuthService
	KakaoService       *service.KakaoService
	UserService        *service.UserService
	GoalService        *service.GoalService
	HistoryService     *service.HistoryService
	LeaderboardService *service.LeaderboardService
	CommentService     *service.CommentService
	LegalService       *service.LegalService

	// Guest mode runs the same services over the key-value store
	GuestGoalService    *service.GoalService
	GuestHistoryService *service.HistoryService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	historyRepository := repository.NewHistoryRepository(database)
	commentRepository := repository.NewCommentRepository(database)

	// Guest storage
	guestStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}
	guestGoalRepository := repository.NewGuestGoalRepository(guestStorage)
	guestHistoryRepository := repository.NewGuestHistoryRepository(guestStorage)

	leaderboardCache, err := newCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}

	clock := service.NewClock(time.Now, cfg.Location())

	// Services
	historyService := service.NewHistoryService(historyRepository, leaderboardCache, clock)
	guestHistoryService := service.NewHistoryService(guestHistoryRepository, nil, clock)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.SecureCookies)
	kakaoService := service.NewKakaoService(service.KakaoConfig{
		ClientID:     cfg.KakaoClientID,
		ClientSecret: cfg.KakaoClientSecret,
		RedirectURL:  cfg.AppURL + "/auth/kakao/callback",
	})

	return &App{
		Cfg:   cfg,
		DB:    database,
		Cache: leaderboardCache,
		Clock: clock,

		AuthService:        authService,
		KakaoService:       kakaoService,
		UserService:        service.NewUserService(userRepository),
		GoalService:        service.NewGoalService(goalRepository, historyService, clock),
		HistoryService:     historyService,
		LeaderboardService: service.NewLeaderboardService(userRepository, historyRepository, leaderboardCache, cfg.LeaderboardCacheTTL, clock),
		CommentService:     service.NewCommentService(commentRepository),
		LegalService:       service.NewLegalService(cfg.ContentPath),

		GuestGoalService:    service.NewGoalService(guestGoalRepository, guestHistoryService, clock),
		GuestHistoryService: guestHistoryService,
	}, nil
}

// newCache connects to Redis when REDIS_URL is set and falls back to an
// in-process cache otherwise.
func newCache(cfg *config.Config) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		slog.Info("leaderboard cache: in-process")
		return cache.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := cache.NewRedisCache(ctx, cfg.RedisURL, strings.ToLower(cfg.AppName)+":")
	if err != nil {
		return nil, err
	}
	slog.Info("leaderboard cache: redis")
	return c, nil
}

// Scopes groups the user and guest services for the handlers.
func (a *App) Scopes() handler.Scopes {
	return handler.Scopes{
		Users:  handler.Scope{Goals: a.GoalService, History: a.HistoryService},
		Guests: handler.Scope{Goals: a.GuestGoalService, History: a.GuestHistoryService},
	}
}

func (a *App) Close() error {
	if closer, ok := a.Cache.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			slog.Error("failed to close cache", "error", err)
		}
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
