package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/db/dbtest"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/service"
)

func fakeKakao(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"bearer"}`))
	})
	mux.HandleFunc("GET /v2/user/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         12345,
			"properties": map[string]string{"nickname": "Dami"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestAuthHandler(t *testing.T) (*authHandler, repository.UserRepository) {
	t.Helper()

	kakaoServer := fakeKakao(t)
	users := repository.NewUserRepository(dbtest.New(t))
	kakao := service.NewKakaoService(service.KakaoConfig{
		ClientID:    "client",
		RedirectURL: "http://api.test/auth/kakao/callback",
		AuthURL:     kakaoServer.URL + "/oauth/authorize",
		TokenURL:    kakaoServer.URL + "/oauth/token",
		ProfileURL:  kakaoServer.URL + "/v2/user/me",
	})
	auth := service.NewAuthService(users, "secret", time.Hour, false)

	return NewAuthHandler(auth, kakao, "http://app.test", false), users
}

func TestAuthHandler_KakaoAuthSetsState(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	rec := httptest.NewRecorder()
	h.KakaoAuth(rec, httptest.NewRequest(http.MethodGet, "/auth/kakao", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)

	var state *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == oauthStateCookie {
			state = c
		}
	}
	require.NotNil(t, state)
	assert.Equal(t, state.Value, location.Query().Get("state"))
}

func TestAuthHandler_KakaoCallback(t *testing.T) {
	callback := func(h *authHandler, query, stateCookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/kakao/callback?"+query, nil)
		if stateCookie != "" {
			req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: stateCookie})
		}
		rec := httptest.NewRecorder()
		h.KakaoCallback(rec, req)
		return rec
	}

	t.Run("state mismatch", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		rec := callback(h, "state=a&code=good-code", "b")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "http://app.test/?login_error=1", rec.Header().Get("Location"))
	})

	t.Run("exchange fails", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		rec := callback(h, "state=s&code=bad-code", "s")
		assert.Equal(t, "http://app.test/?login_error=1", rec.Header().Get("Location"))
	})

	t.Run("success", func(t *testing.T) {
		h, users := newTestAuthHandler(t)
		rec := callback(h, "state=s&code=good-code", "s")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "http://app.test/", rec.Header().Get("Location"))

		var session *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == "auth_token" {
				session = c
			}
		}
		require.NotNil(t, session)
		assert.NotEmpty(t, session.Value)

		user, err := users.ByID("12345")
		require.NoError(t, err)
		assert.Equal(t, "Dami", user.Nickname)
	})
}
