package model

import (
	"net/url"
	"strings"
	"time"
)

const avatarFallbackURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

type User struct {
	ID           string    `db:"id" json:"id"`
	Nickname     string    `db:"nickname" json:"nickname"`
	ProfileImage string    `db:"profile_image" json:"profile_image"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// AvatarURL returns the profile image over https, or a generated avatar
// seeded by the nickname when the user has none.
func (u *User) AvatarURL() string {
	if u.ProfileImage == "" {
		return avatarFallbackURL + url.QueryEscape(u.Nickname)
	}
	return SecureURL(u.ProfileImage)
}

// SecureURL upgrades an http URL to https.
func SecureURL(raw string) string {
	if strings.HasPrefix(raw, "http:") {
		return "https:" + strings.TrimPrefix(raw, "http:")
	}
	return raw
}
