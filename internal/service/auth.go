package service

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/validation"
)

const authCookieName = "auth_token"

var ErrInvalidToken = errors.New("invalid token")

type AuthService struct {
	userRepository repository.UserRepository
	jwtSecret      string
	jwtExpiry      time.Duration
	secureCookies  bool
}

func NewAuthService(
	userRepository repository.UserRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
	secureCookies bool,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtSecret:      jwtSecret,
		jwtExpiry:      jwtExpiry,
		secureCookies:  secureCookies,
	}
}

// AuthenticateKakao creates or refreshes the user behind a Kakao profile.
func (s *AuthService) AuthenticateKakao(profile *KakaoProfile) (*model.User, error) {
	nickname, err := validation.NormalizeNickname(profile.Nickname)
	if err != nil {
		nickname = DefaultKakaoNickname
	}

	now := time.Now().UTC()
	err = s.userRepository.Upsert(&model.User{
		ID:           profile.ID,
		Nickname:     nickname,
		ProfileImage: model.SecureURL(profile.ProfileImage),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	user, err := s.userRepository.ByID(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	slog.Info("user authenticated via kakao", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(s.jwtExpiry)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     expiry.Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiry, nil
}

// VerifyJWT returns the user ID carried by a valid token.
func (s *AuthService) VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest returns the session token cookie value, if any.
func (s *AuthService) TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
