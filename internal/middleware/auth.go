package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/templui/goalboard/internal/ctxkeys"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
)

const (
	guestCookieName   = "guest_id"
	guestCookieMaxAge = 365 * 24 * time.Hour
)

// AuthMiddleware puts the signed-in user into the context. Requests without
// a valid session are served as a guest identified by the guest_id cookie.
func AuthMiddleware(authService *service.AuthService, userService *service.UserService, secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := authService.TokenFromRequest(r); token != "" {
				user, err := sessionUser(authService, userService, token)
				if err == nil {
					ctx := ctxkeys.WithUser(r.Context(), user)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				// Stale or forged session, drop it and continue as guest
				slog.Debug("discarding auth cookie", "error", err)
				authService.ClearJWTCookie(w)
			}

			guestID := guestIDFromRequest(w, r, secureCookies)
			ctx := ctxkeys.WithGuestID(r.Context(), guestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionUser(authService *service.AuthService, userService *service.UserService, token string) (*model.User, error) {
	userID, err := authService.VerifyJWT(token)
	if err != nil {
		return nil, err
	}
	return userService.ByID(userID)
}

// guestIDFromRequest returns the guest cookie, issuing a new one when it
// is missing or malformed.
func guestIDFromRequest(w http.ResponseWriter, r *http.Request, secureCookies bool) string {
	cookie, err := r.Cookie(guestCookieName)
	if err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     guestCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(guestCookieMaxAge.Seconds()),
	})
	return id
}

// RequireUser rejects guests with 401.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.User(r.Context()) == nil {
			model.NewUnauthorizedError("login with Kakao to continue").WriteJSON(w)
			return
		}
		next.ServeHTTP(w, r)
	}
}
