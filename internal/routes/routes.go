package routes

import (
	"net/http"

	"github.com/templui/goalboard/internal/app"
	"github.com/templui/goalboard/internal/handler"
	"github.com/templui/goalboard/internal/middleware"
	"github.com/templui/goalboard/internal/model"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	legal := handler.NewLegalHandler(app.LegalService)
	auth := handler.NewAuthHandler(app.AuthService, app.KakaoService, app.Cfg.FrontendURL, app.Cfg.SecureCookies)
	user := handler.NewUserHandler(app.UserService, app.AuthService)
	goal := handler.NewGoalHandler(app.Scopes())
	history := handler.NewHistoryHandler(app.Scopes())
	leaderboard := handler.NewLeaderboardHandler(app.LeaderboardService)
	comment := handler.NewCommentHandler(app.CommentService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Check)
	mux.HandleFunc("GET /legal/{page}", legal.ShowPage)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /auth/kakao", rateLimiter(auth.KakaoAuth))
	mux.HandleFunc("GET /auth/kakao/callback", rateLimiter(auth.KakaoCallback))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Leaderboard and member cards
	mux.HandleFunc("GET /api/leaderboard", leaderboard.Rank)
	mux.HandleFunc("GET /api/users/{id}", leaderboard.Member)
	mux.HandleFunc("GET /api/comments", comment.List)

	// ============================================================================
	// USER OR GUEST ROUTES
	// ============================================================================

	// Goals
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("PATCH /api/goals/{id}/toggle", goal.Toggle)
	mux.HandleFunc("DELETE /api/goals/{id}", goal.Delete)
	mux.HandleFunc("GET /api/summary", goal.Summary)

	// History
	mux.HandleFunc("GET /api/history", history.List)
	mux.HandleFunc("GET /api/history/{date}", history.Show)
	mux.HandleFunc("POST /api/history", history.Save)
	mux.HandleFunc("GET /api/calendar", history.Calendar)

	// ============================================================================
	// SIGNED-IN ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/me", middleware.RequireUser(user.Me))
	mux.HandleFunc("DELETE /api/me", middleware.RequireUser(user.DeleteAccount))
	mux.HandleFunc("POST /api/comments", middleware.RequireUser(comment.Create))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, model.NewNotFoundError("route"))
	})

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.CORS(app.Cfg.CORSAllowedOrigins), // Preflight requests end here
		middleware.Config(app.Cfg),                  // Needed by CSRF for the cookie flags
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.Cfg.SecureCookies),
		middleware.WithURLPath,
	)
}
