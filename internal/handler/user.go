package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/goalboard/internal/ctxkeys"
	"github.com/templui/goalboard/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

type meResponse struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	WriteData(w, http.StatusOK, meResponse{
		ID:       user.ID,
		Nickname: user.Nickname,
		Avatar:   user.AvatarURL(),
	})
}

// DeleteAccount removes the user with their goals, history and comments.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.userService.Delete(user.ID)
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	h.authService.ClearJWTCookie(w)
	slog.Info("account deleted", "user_id", user.ID)
	WriteNoContent(w)
}
