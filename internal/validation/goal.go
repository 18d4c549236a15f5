package validation

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxGoalTextLength = 200

var (
	ErrGoalTextRequired = errors.New("goal text is required")
	ErrGoalTextTooLong  = errors.New("goal text is too long (max 200 characters)")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidMonth     = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
)

// GoalText returns the trimmed goal text or a validation error.
func GoalText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return "", ErrGoalTextRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxGoalTextLength {
		return "", ErrGoalTextTooLong
	}

	return trimmed, nil
}

func ValidateDate(date string) error {
	_, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ErrInvalidDate
	}
	return nil
}

func ValidateMonth(month string) error {
	_, err := time.Parse("2006-01", month)
	if err != nil {
		return ErrInvalidMonth
	}
	return nil
}

func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}
	return nil
}
