package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/app"
	"github.com/templui/goalboard/internal/config"
	"github.com/templui/goalboard/internal/service"
)

type client struct {
	t       *testing.T
	http    *http.Client
	baseURL string
	csrf    string
}

func newClient(t *testing.T, baseURL string) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, http: &http.Client{Jar: jar}, baseURL: baseURL}
}

// do sends a request and decodes the JSON body into out when given.
func (c *client) do(method, path string, body any, out any) *http.Response {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.csrf != "" {
		req.Header.Set("X-CSRF-Token", c.csrf)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if token := resp.Header.Get("X-CSRF-Token"); token != "" {
		c.csrf = token
	}
	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type goalBody struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	cfg := &config.Config{
		AppName:             "Goalboard",
		AppEnv:              "development",
		AppURL:              "http://localhost:8090",
		FrontendURL:         "http://localhost:5173",
		Port:                "8090",
		ContentPath:         t.TempDir(),
		Timezone:            "Asia/Seoul",
		DBDriver:            "sqlite",
		DBConnection:        filepath.Join(t.TempDir(), "app.db") + "?_pragma=foreign_keys(1)",
		JWTSecret:           "test-secret",
		JWTExpiry:           time.Hour,
		CORSAllowedOrigins:  []string{"http://localhost:5173"},
		LeaderboardCacheTTL: time.Minute,
		GuestStore:          config.GuestStoreMemory,
	}

	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestRoutes_GuestFlow(t *testing.T) {
	a := newTestApp(t)
	server := httptest.NewServer(SetupRoutes(a))
	defer server.Close()

	c := newClient(t, server.URL)

	var goals envelope[[]goalBody]
	resp := c.do(http.MethodGet, "/api/goals", nil, &goals)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, goals.Data)
	require.NotEmpty(t, c.csrf)

	token := c.csrf
	c.csrf = ""
	resp = c.do(http.MethodPost, "/api/goals", map[string]string{"text": "drink water"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "csrf header required")
	c.csrf = token

	var created envelope[goalBody]
	resp = c.do(http.MethodPost, "/api/goals", map[string]string{"text": "drink water"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "drink water", created.Data.Text)

	resp = c.do(http.MethodPost, "/api/goals", map[string]string{"text": ""}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var toggled envelope[goalBody]
	resp = c.do(http.MethodPatch, "/api/goals/"+created.Data.ID+"/toggle", nil, &toggled)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, toggled.Data.Completed)

	var summary envelope[struct {
		Progress int `json:"progress"`
		Total    int `json:"total"`
	}]
	resp = c.do(http.MethodGet, "/api/summary", nil, &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 100, summary.Data.Progress)
	assert.Equal(t, 1, summary.Data.Total)

	var history envelope[map[string]struct {
		Progress int `json:"progress"`
	}]
	resp = c.do(http.MethodGet, "/api/history", nil, &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, history.Data, 1)

	resp = c.do(http.MethodPost, "/api/comments", map[string]string{"text": "hi"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "guests are read-only")

	resp = c.do(http.MethodDelete, "/api/goals/"+created.Data.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = c.do(http.MethodDelete, "/api/goals/"+created.Data.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var members envelope[[]any]
	resp = c.do(http.MethodGet, "/api/leaderboard", nil, &members)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, members.Data, "guests are not ranked")
}

func TestRoutes_SignedInFlow(t *testing.T) {
	a := newTestApp(t)
	server := httptest.NewServer(SetupRoutes(a))
	defer server.Close()

	user, err := a.AuthService.AuthenticateKakao(&service.KakaoProfile{ID: "777", Nickname: "Jun"})
	require.NoError(t, err)
	token, _, err := a.AuthService.GenerateJWT(user)
	require.NoError(t, err)

	c := newClient(t, server.URL)
	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	c.http.Jar.SetCookies(serverURL, []*http.Cookie{{Name: "auth_token", Value: token, Path: "/"}})

	var me envelope[struct {
		ID       string `json:"id"`
		Nickname string `json:"nickname"`
	}]
	resp := c.do(http.MethodGet, "/api/me", nil, &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jun", me.Data.Nickname)

	resp = c.do(http.MethodPost, "/api/goals", map[string]string{"text": "read"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = c.do(http.MethodPost, "/api/history", map[string]any{"date": "2024-01-02", "progress": 0}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.do(http.MethodPost, "/api/history", map[string]any{"date": "2024-01-02", "progress": 140}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var comment envelope[struct {
		AuthorName string `json:"author_name"`
	}]
	resp = c.do(http.MethodPost, "/api/comments", map[string]string{"text": "let's go"}, &comment)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Jun", comment.Data.AuthorName)

	var ranked envelope[[]struct {
		ID    string `json:"id"`
		Stats struct {
			Penalty int `json:"penalty"`
		} `json:"stats"`
	}]
	resp = c.do(http.MethodGet, "/api/leaderboard?period=penalty", nil, &ranked)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, ranked.Data, 1)
	assert.Equal(t, "777", ranked.Data[0].ID)
	assert.Equal(t, 2000, ranked.Data[0].Stats.Penalty)

	resp = c.do(http.MethodGet, "/api/leaderboard?period=forever", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = c.do(http.MethodGet, "/api/users/777", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.do(http.MethodPost, "/auth/logout", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = c.do(http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_Misc(t *testing.T) {
	a := newTestApp(t)
	server := httptest.NewServer(SetupRoutes(a))
	defer server.Close()

	c := newClient(t, server.URL)

	var health map[string]string
	resp := c.do(http.MethodGet, "/healthz", nil, &health)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health["status"])

	resp = c.do(http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	resp = c.do(http.MethodGet, "/legal/privacy", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = c.do(http.MethodGet, "/api/calendar?month=2024-02", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.do(http.MethodGet, "/api/history/not-a-date", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = c.do(http.MethodGet, "/auth/kakao", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "kakao login disabled without a client id")
}
