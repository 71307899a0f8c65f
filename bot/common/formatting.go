package common

import (
	"fmt"
	"strings"
	"time"
)

// Embed accent colors
const (
	ColorInfo    = 0x0099ff
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorGold    = 0xffd700
	ColorPurple  = 0x9932cc
)

// FormatNumber formats an integer with thousand separators
func FormatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if n < 0 {
		str = str[1:]
	}

	l := len(str)
	if l <= 3 {
		if n < 0 {
			return "-" + str
		}
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (l-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	if n < 0 {
		return "-" + result.String()
	}
	return result.String()
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that renders
// in the reader's local timezone. Format types: "t" short time, "F" long
// date/time, "R" relative time.
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// OrNone substitutes a placeholder for empty values in embed fields
func OrNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
