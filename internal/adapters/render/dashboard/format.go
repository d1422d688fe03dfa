package dashboard

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultLocale = "en"

// FormatDuration renders d as "2d 4h 13m", or "45s" under a minute. Nil and
// negative durations render as "-".
func FormatDuration(d *time.Duration) string {
	if d == nil || *d < 0 {
		return "-"
	}

	if *d < time.Minute {
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	}

	total := int64(d.Minutes())
	days := total / (24 * 60)
	hours := (total / 60) % 24
	minutes := total % 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))

	return strings.Join(parts, " ")
}

func FormatMillis(ms *int64) string {
	if ms == nil {
		return "-"
	}

	d := time.Duration(*ms) * time.Millisecond
	return FormatDuration(&d)
}

// NumberFormatter prints integers and ratios with the grouping rules of a
// language.
type NumberFormatter struct {
	printer *message.Printer
}

func NewNumberFormatter(locale string) (NumberFormatter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return NumberFormatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	return NumberFormatter{printer: message.NewPrinter(tag)}, nil
}

func (f NumberFormatter) Int(n int64) string {
	return f.p().Sprintf("%d", n)
}

func (f NumberFormatter) Percent(fraction float64) string {
	return f.p().Sprintf("%.0f%%", fraction*100)
}

func (f NumberFormatter) p() *message.Printer {
	if f.printer == nil {
		return message.NewPrinter(language.English)
	}
	return f.printer
}
