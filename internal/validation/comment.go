package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const MaxCommentLength = 500

var (
	ErrCommentRequired    = errors.New("comment text is required")
	ErrCommentTooLong     = errors.New("comment is too long (max 500 characters)")
	ErrInvalidCommentType = errors.New("comment type must be lowercase letters or underscores (max 32)")
)

var commentTypePattern = regexp.MustCompile(`^[a-z_]{1,32}$`)

func CommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return "", ErrCommentRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxCommentLength {
		return "", ErrCommentTooLong
	}

	return trimmed, nil
}

// CommentType returns the category tag, defaulting to general.
func CommentType(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "general", nil
	}

	if !commentTypePattern.MatchString(tag) {
		return "", ErrInvalidCommentType
	}

	return tag, nil
}
