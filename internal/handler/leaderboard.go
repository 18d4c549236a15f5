package handler

import (
	"net/http"

	"github.com/templui/goalboard/internal/service"
	"github.com/templui/goalboard/internal/stats"
)

type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Rank lists the members ordered by ?period=, daily progress by default.
func (h *LeaderboardHandler) Rank(w http.ResponseWriter, r *http.Request) {
	period, err := stats.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeServiceError(w, r, err, "period")
		return
	}

	members, err := h.leaderboardService.Rank(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, err, "leaderboard")
		return
	}

	WriteData(w, http.StatusOK, members)
}

// Member is the profile card of one user: history and stats.
func (h *LeaderboardHandler) Member(w http.ResponseWriter, r *http.Request) {
	member, err := h.leaderboardService.Member(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	WriteData(w, http.StatusOK, member)
}
