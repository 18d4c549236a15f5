package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxNicknameLength = 50

var ErrNicknameRequired = errors.New("nickname is required")

// NormalizeNickname trims the nickname and cuts it to MaxNicknameLength runes.
func NormalizeNickname(nickname string) (string, error) {
	trimmed := strings.TrimSpace(nickname)
	if trimmed == "" {
		return "", ErrNicknameRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxNicknameLength {
		trimmed = string([]rune(trimmed)[:MaxNicknameLength])
	}

	return trimmed, nil
}
