package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"pokerledger/domain/entities"
)

// Embed colors
const (
	ColorPrimary = 0x5865F2
	ColorSuccess = 0x10b981
	ColorWarning = 0xf59e0b
	ColorDanger  = 0xef4444
)

// FormatChips formats a chip amount with thousand separators
func FormatChips(chips int64) string {
	str := strconv.FormatInt(chips, 10)
	negative := strings.HasPrefix(str, "-")
	str = strings.TrimPrefix(str, "-")

	n := len(str)
	var result strings.Builder
	if negative {
		result.WriteByte('-')
	}
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// FormatRubles formats a ruble amount with two decimals
func FormatRubles(amount float64) string {
	return fmt.Sprintf("%.2f ₽", amount)
}

// FormatProfit formats a profit with an explicit sign
func FormatProfit(profit float64) string {
	switch {
	case profit > 0:
		return "+" + FormatRubles(profit)
	case profit < 0:
		return "-" + FormatRubles(math.Abs(profit))
	default:
		return FormatRubles(0)
	}
}

// FormatBlinds formats small and big blind as "5/10"
func FormatBlinds(settings entities.GameSettings) string {
	return fmt.Sprintf("%s/%s", FormatChips(settings.SmallBlind), FormatChips(settings.BigBlind))
}

// FormatDiscordTimestamp formats a time as a Discord timestamp shown in the reader's timezone
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// ParseNames splits a comma separated list of names, dropping blanks
func ParseNames(s string) []string {
	names := []string{}
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ParseChipCounts parses "Alice=1500, Bob=0" into final chip counts
func ParseChipCounts(s string) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, value, ok := strings.Cut(part, "=")
		if !ok {
			name, value, ok = strings.Cut(part, ":")
		}
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=chips, got %q", part)
		}

		chips, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chip count for %s is not a number: %q", name, strings.TrimSpace(value))
		}
		if _, dup := counts[name]; dup {
			return nil, fmt.Errorf("chip count for %s given twice", name)
		}
		counts[name] = chips
	}
	return counts, nil
}
