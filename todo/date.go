package todo

import (
	"sort"
	"strings"
	"time"

	"github.com/amonks/todolist/internal/validation"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

var localeLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"de-DE": "2.1.2006",
	"ja-JP": "2006/1/2",
	"zh-TW": "2006/1/2",
	"iso":   "2006-01-02",
}

// parseOrder lists the fallback layouts tried by ParseDate.
var parseOrder = []string{"1/2/2006", "2006/1/2", "2006-01-02", "2.1.2006", "02/01/2006"}

// Locales returns the supported locale names, sorted.
func Locales() []string {
	names := make([]string, 0, len(localeLayouts))
	for name := range localeLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayoutForLocale returns the date layout for a locale name.
// An empty name selects DefaultLocale.
func LayoutForLocale(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultLocale
	}
	for locale, layout := range localeLayouts {
		if strings.EqualFold(locale, strings.TrimSpace(name)) {
			return layout, nil
		}
	}
	return "", validation.FormatInvalidValueError(ErrUnknownLocale, name, Locales())
}

// FormatDate formats t as a calendar date.
func FormatDate(t time.Time, layout string) string {
	return t.Format(layout)
}

// ParseDate parses a stored date, trying layout first and then every known
// layout. The boolean is false when nothing matches.
func ParseDate(value, layout string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if layout != "" {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	for _, candidate := range parseOrder {
		if candidate == layout {
			continue
		}
		if parsed, err := time.Parse(candidate, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
