// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tapsave/tapsave/internal/config"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatChange formats a value already expressed in percent with an explicit sign.
// e.g., 12.34 -> "+12.3%", -5 -> "-5.0%"
func FormatChange(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats the difference between two amounts with a sign.
func FormatDelta(current, previous float64, cur config.Currency) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + config.FormatAmount(delta, cur)
	}
	return "-" + config.FormatAmount(-delta, cur)
}

// FormatDay formats a calendar day as "Mon 02 Jan 2006".
func FormatDay(t time.Time) string {
	return t.Local().Format("Mon 02 Jan 2006")
}

// FormatMonth formats a month as "Jan 2006".
func FormatMonth(t time.Time) string {
	return t.Local().Format("Jan 2006")
}

// ShortWeekday returns the 3-letter abbreviation of a weekday name.
func ShortWeekday(name string) string {
	if len(name) < 3 {
		return name
	}
	return name[:3]
}
