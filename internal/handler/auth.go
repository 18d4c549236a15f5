package handler

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/service"
)

const oauthStateCookie = "oauth_state"

type authHandler struct {
	authService   *service.AuthService
	kakaoService  *service.KakaoService
	frontendURL   string
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, kakaoService *service.KakaoService, frontendURL string, secureCookies bool) *authHandler {
	return &authHandler{
		authService:   authService,
		kakaoService:  kakaoService,
		frontendURL:   frontendURL,
		secureCookies: secureCookies,
	}
}

// KakaoAuth redirects the user to the Kakao consent screen.
func (h *authHandler) KakaoAuth(w http.ResponseWriter, r *http.Request) {
	if !h.kakaoService.Enabled() {
		WriteError(w, model.NewNotFoundError("kakao login"))
		return
	}

	state := generateOAuthState()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	http.Redirect(w, r, h.kakaoService.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// KakaoCallback finishes the login and sends the browser back to the app.
// Failures land on the frontend with ?login_error=1.
func (h *authHandler) KakaoCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value != state || state == "" {
		slog.Warn("kakao oauth state validation failed", "error", err)
		h.redirectLoginError(w, r)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   oauthStateCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("kakao oauth callback missing code", "error_description", r.URL.Query().Get("error_description"))
		h.redirectLoginError(w, r)
		return
	}

	token, err := h.kakaoService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("kakao oauth token exchange failed", "error", err)
		h.redirectLoginError(w, r)
		return
	}

	profile, err := h.kakaoService.Profile(r.Context(), token)
	if err != nil {
		slog.Error("failed to get kakao profile", "error", err)
		h.redirectLoginError(w, r)
		return
	}

	user, err := h.authService.AuthenticateKakao(profile)
	if err != nil {
		slog.Error("kakao authentication failed", "error", err, "kakao_id", profile.ID)
		h.redirectLoginError(w, r)
		return
	}

	jwtToken, expiry, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		h.redirectLoginError(w, r)
		return
	}

	h.authService.SetJWTCookie(w, jwtToken, expiry)

	slog.Info("user logged in with kakao", "user_id", user.ID)
	http.Redirect(w, r, h.frontendPath("/", nil), http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	WriteNoContent(w)
}

func (h *authHandler) redirectLoginError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.frontendPath("/", url.Values{"login_error": {"1"}}), http.StatusSeeOther)
}

func (h *authHandler) frontendPath(path string, query url.Values) string {
	target := h.frontendURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func generateOAuthState() string {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(bytes)
}
