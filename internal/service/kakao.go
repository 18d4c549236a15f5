package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/templui/goalboard/internal/model"
	"golang.org/x/oauth2"
)

const (
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

	DefaultKakaoNickname = "Kakao User"
)

var ErrKakaoProfile = errors.New("kakao profile unavailable")

type KakaoConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Endpoint overrides; Kakao's production endpoints when empty
	AuthURL    string
	TokenURL   string
	ProfileURL string
}

// KakaoProfile is the normalized account returned by /v2/user/me.
type KakaoProfile struct {
	ID           string
	Nickname     string
	ProfileImage string
}

type KakaoService struct {
	oauth      *oauth2.Config
	profileURL string
}

func NewKakaoService(cfg KakaoConfig) *KakaoService {
	authURL := orDefault(cfg.AuthURL, kakaoAuthURL)
	tokenURL := orDefault(cfg.TokenURL, kakaoTokenURL)

	return &KakaoService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"profile_nickname", "profile_image"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: orDefault(cfg.ProfileURL, kakaoProfileURL),
	}
}

func (s *KakaoService) Enabled() bool {
	return s.oauth.ClientID != ""
}

func (s *KakaoService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

func (s *KakaoService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return s.oauth.Exchange(ctx, code)
}

type kakaoUserResponse struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
	KakaoAccount struct {
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// Profile fetches the signed-in account. Nickname and image come from the
// account profile first, then the legacy properties.
func (s *KakaoService) Profile(ctx context.Context, token *oauth2.Token) (*KakaoProfile, error) {
	client := s.oauth.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrKakaoProfile, resp.StatusCode)
	}

	var body kakaoUserResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if body.ID == 0 {
		return nil, fmt.Errorf("%w: missing id", ErrKakaoProfile)
	}

	return &KakaoProfile{
		ID:           strconv.FormatInt(body.ID, 10),
		Nickname:     firstNonEmpty(body.KakaoAccount.Profile.Nickname, body.Properties.Nickname, DefaultKakaoNickname),
		ProfileImage: model.SecureURL(firstNonEmpty(body.KakaoAccount.Profile.ProfileImageURL, body.Properties.ProfileImage)),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
