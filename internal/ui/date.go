package ui

import (
	"errors"
	"time"

	"github.com/goodsign/monday"
)

var ErrUnknownLocale = errors.New("unknown locale")

// Locale names a fixed date convention
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt-BR"
)

var layouts = map[Locale]struct {
	layout string
	locale monday.Locale
}{
	English:    {"January 2, 2006", monday.LocaleEnUS},
	Portuguese: {"2 de January de 2006", monday.LocalePtBR},
}

func (l Locale) Valid() error {
	if _, ok := layouts[l]; !ok {
		return ErrUnknownLocale
	}
	return nil
}

// FormatDate renders a day, e.g. "October 19, 2026" or "19 de outubro de 2026".
// Unknown locales fall back to English.
func FormatDate(t time.Time, l Locale) string {
	f, ok := layouts[l]
	if !ok {
		f = layouts[English]
	}
	return monday.Format(t, f.layout, f.locale)
}
