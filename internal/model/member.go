package model

// Stats holds the period averages and the accumulated penalty of a member.
type Stats struct {
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
	Penalty int `json:"penalty"`
}

// Member is a leaderboard participant.
type Member struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Avatar   string         `json:"avatar"`
	Progress int            `json:"progress"`
	History  map[string]int `json:"history"`
	Stats    Stats          `json:"stats"`
}

// Summary is the caller's own view of today, recomputed after every goal change.
type Summary struct {
	Date           string `json:"date"`
	Progress       int    `json:"progress"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	Stats          Stats  `json:"stats"`
	PenaltyDisplay string `json:"penalty_display"`
	Motivation     string `json:"motivation"`
}
