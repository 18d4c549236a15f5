package service

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var wonPrinter = message.NewPrinter(language.Korean)

// FormatPenalty renders an amount in Korean won, e.g. 12,000원.
func FormatPenalty(amount int) string {
	return wonPrinter.Sprintf("%d원", amount)
}
