package i18n

import "golang.org/x/text/message"

// Localizer translates keys for one locale
type Localizer struct {
	catalog *Catalog
	locale  string
	printer *message.Printer
}

// Locale returns the catalog locale the localizer resolved to
func (l *Localizer) Locale() string {
	return l.locale
}

// Translate returns the message for key, or "" when no locale defines it
func (l *Localizer) Translate(key string) string {
	value, _ := l.catalog.Message(l.locale, key)
	return value
}

// Sprintf formats the message registered under key with args using the
// number conventions of the locale.
func (l *Localizer) Sprintf(key string, args ...any) string {
	if _, ok := l.catalog.Message(l.locale, key); !ok {
		return ""
	}
	return l.printer.Sprintf(key, args...)
}
